package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"quizmaster/cmd/seed_initial_data/internal/seedmodels"
	"quizmaster/internal/config"
	"quizmaster/internal/database"
	"quizmaster/internal/domain"
	"quizmaster/internal/logger"
	"quizmaster/internal/repository"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/sample_courses.json"

type seeder struct {
	courses   domain.CourseRepository
	chapters  domain.ChapterRepository
	quizzes   domain.QuizRepository
	questions domain.QuestionRepository
	tx        domain.TransactionManager
	log       *zap.Logger
	now       time.Time
}

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewPostgresDB(ctx, cfg.GetDSN(), cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seedCourses []seedmodels.SeedCourse
	if err := json.Unmarshal(byteValue, &seedCourses); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("courses_loaded", len(seedCourses)))

	s := &seeder{
		courses:   repository.NewSQLXCourseRepository(db),
		chapters:  repository.NewSQLXChapterRepository(db),
		quizzes:   repository.NewSQLXQuizRepository(db),
		questions: repository.NewSQLXQuestionRepository(db),
		tx:        repository.NewTransactionManagerAdapter(db),
		log:       log,
		now:       time.Now(),
	}

	for _, sc := range seedCourses {
		if err := s.seedCourse(ctx, sc); err != nil {
			log.Error("Error seeding course, transaction rolled back", zap.String("course", sc.Name), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

// seedCourse inserts one course with its whole tree in a single transaction.
// A course whose name already exists is skipped.
func (s *seeder) seedCourse(ctx context.Context, sc seedmodels.SeedCourse) error {
	existing, err := s.courses.ListCourses(ctx, domain.CourseFilter{NameContains: sc.Name})
	if err != nil {
		return fmt.Errorf("error checking course %s: %w", sc.Name, err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, sc.Name) {
			s.log.Info("Course exists, skipping.", zap.Int64("id", c.ID), zap.String("name", c.Name))
			return nil
		}
	}

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		course := &domain.Course{Name: sc.Name, Category: sc.Category}
		if err := s.courses.CreateCourse(txCtx, course); err != nil {
			return fmt.Errorf("failed to save course %s: %w", sc.Name, err)
		}
		s.log.Info("Created course.", zap.Int64("id", course.ID), zap.String("name", course.Name))

		for _, sch := range sc.Chapters {
			chapter := &domain.Chapter{Name: sch.Name, CourseID: course.ID}
			if err := s.chapters.CreateChapter(txCtx, chapter); err != nil {
				return fmt.Errorf("failed to save chapter %s: %w", sch.Name, err)
			}

			for _, sq := range sch.Quizzes {
				quiz := sq.ToDomain(course.ID, chapter.ID, s.now)
				if err := s.quizzes.CreateQuiz(txCtx, quiz); err != nil {
					return fmt.Errorf("failed to save quiz %s: %w", sq.Name, err)
				}
				for _, sqn := range sq.Questions {
					if err := s.questions.CreateQuestion(txCtx, sqn.ToDomain(quiz.ID, chapter.ID)); err != nil {
						return fmt.Errorf("failed to save question for quiz %s: %w", sq.Name, err)
					}
				}
				s.log.Debug("Created quiz.", zap.Int64("id", quiz.ID), zap.Int("questions", len(sq.Questions)))
			}
		}
		return nil
	})
}
