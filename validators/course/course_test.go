package courseValidator_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unireg/services"
	courseValidator "unireg/validators/course"
)

func newPayloadApp() *fiber.App {
	app := fiber.New()
	app.Post("/course", courseValidator.CoursePayload(), func(c *fiber.Ctx) error {
		in := c.Locals("validatedCourse").(*services.CourseInput)
		return c.JSON(in)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCoursePayload(t *testing.T) {
	app := newPayloadApp()

	t.Run("valid body passes through", func(t *testing.T) {
		status := postJSON(t, app, "/course",
			`{"code":"CS101","name":"Intro","name_ar":"مقدمة","credits":3,"semester":"Fall 2024"}`)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("credits out of range", func(t *testing.T) {
		status := postJSON(t, app, "/course",
			`{"code":"CS101","name":"Intro","name_ar":"مقدمة","credits":7,"semester":"Fall 2024"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})

	t.Run("missing required fields", func(t *testing.T) {
		status := postJSON(t, app, "/course", `{"credits":3}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})

	t.Run("malformed json", func(t *testing.T) {
		status := postJSON(t, app, "/course", `{"code":`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestCourseID(t *testing.T) {
	app := fiber.New()
	app.Get("/course/:id", courseValidator.CourseID(), func(c *fiber.Ctx) error {
		id := c.Locals("courseID").(uint)
		return c.JSON(fiber.Map{"id": id})
	})

	t.Run("numeric id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/course/42", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/course/abc", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("negative id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/course/-1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
