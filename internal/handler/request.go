package handler

import (
	"strconv"
	"strings"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const answerFieldPrefix = "question_"

// bindBody parses a JSON or form-encoded body into out.
func bindBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewInvalidInputError("malformed request body")
	}
	return nil
}

// searchParam reads a search term from the query string or, for form
// posts, from the body.
func searchParam(c *fiber.Ctx, name string) string {
	return strings.TrimSpace(c.FormValue(name))
}

// parseAnswers reads a submission. JSON bodies carry {"answers": {"<id>": "..."}};
// form bodies carry one question_<id> field per answered question. Keys
// that are not question ids are ignored.
func parseAnswers(c *fiber.Ctx) (map[int64]string, error) {
	answers := make(map[int64]string)

	if c.Is("json") {
		var req dto.SubmitTestRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, domain.NewInvalidInputError("malformed request body")
		}
		for key, value := range req.Answers {
			if id, ok := answerKey(key); ok {
				answers[id] = value
			}
		}
		return answers, nil
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		if !strings.HasPrefix(string(key), answerFieldPrefix) {
			return
		}
		if id, ok := answerKey(string(key)); ok {
			answers[id] = string(value)
		}
	})
	if form, err := c.MultipartForm(); err == nil {
		for key, values := range form.Value {
			if !strings.HasPrefix(key, answerFieldPrefix) || len(values) == 0 {
				continue
			}
			if id, ok := answerKey(key); ok {
				answers[id] = values[0]
			}
		}
	}
	return answers, nil
}

func answerKey(key string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(key, answerFieldPrefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
