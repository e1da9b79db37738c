package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unireg/models"
	"unireg/services"
)

func TestCreateCourseRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	in := services.CourseInput{
		Code:          "CS101",
		Name:          "Introduction to Computer Science",
		NameAr:        "مقدمة في علوم الحاسب",
		Description:   "Fundamentals of computing.",
		DescriptionAr: "أساسيات الحوسبة",
		Credits:       3,
		Semester:      "Fall 2024",
	}

	created, err := env.catalog.CreateCourse(in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.IsActive, "active flag defaults to true")

	got, err := env.catalog.GetCourse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Code, got.Code)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.NameAr, got.NameAr)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.DescriptionAr, got.DescriptionAr)
	assert.Equal(t, in.Credits, got.Credits)
	assert.Equal(t, in.Semester, got.Semester)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	env := newTestEnv(t)
	env.createCourse(t, "CS101")

	_, err := env.catalog.CreateCourse(courseInput("CS101"))
	assert.ErrorIs(t, err, services.ErrDuplicateCourseCode)
}

func TestCreateCourseValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name   string
		mutate func(*services.CourseInput)
		field  string
	}{
		{"credits above range", func(in *services.CourseInput) { in.Credits = 7 }, "credits"},
		{"credits missing", func(in *services.CourseInput) { in.Credits = 0 }, "credits"},
		{"empty code", func(in *services.CourseInput) { in.Code = "   " }, "code"},
		{"code too long", func(in *services.CourseInput) { in.Code = "CS101-EXTENDED-EDITION" }, "code"},
		{"empty name", func(in *services.CourseInput) { in.Name = "" }, "name"},
		{"empty arabic name", func(in *services.CourseInput) { in.NameAr = "" }, "name_ar"},
		{"empty semester", func(in *services.CourseInput) { in.Semester = "" }, "semester"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := courseInput("CS900")
			tc.mutate(&in)

			_, err := env.catalog.CreateCourse(in)
			ve, ok := services.AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Contains(t, ve.Fields, tc.field)
		})
	}

	// Nothing may reach the store when validation fails.
	var count int64
	env.db.Model(&models.Course{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateCourse(t *testing.T) {
	env := newTestEnv(t)
	cs101 := env.createCourse(t, "CS101")
	cs102 := env.createCourse(t, "CS102")

	t.Run("code collides with another course", func(t *testing.T) {
		in := courseInput("CS101")
		_, err := env.catalog.UpdateCourse(cs102.ID, in)
		assert.ErrorIs(t, err, services.ErrDuplicateCourseCode)
	})

	t.Run("unchanged own code succeeds", func(t *testing.T) {
		in := courseInput("CS101")
		in.Name = "Renamed"
		in.Credits = 4
		updated, err := env.catalog.UpdateCourse(cs101.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, 4, updated.Credits)
	})

	t.Run("missing course", func(t *testing.T) {
		_, err := env.catalog.UpdateCourse(9999, courseInput("CS777"))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("deactivation is persisted", func(t *testing.T) {
		in := courseInput("CS102")
		inactive := false
		in.IsActive = &inactive
		updated, err := env.catalog.UpdateCourse(cs102.ID, in)
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})
}

func TestDeleteCourse(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing course", func(t *testing.T) {
		err := env.catalog.DeleteCourse(9999)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("blocked while registrations exist", func(t *testing.T) {
		course := env.createCourse(t, "CS201")
		student := env.createStudent(t, "Sara", "sara@university.com")
		_, err := env.ledger.Register(student.ID, course.ID)
		require.NoError(t, err)

		err = env.catalog.DeleteCourse(course.ID)
		assert.ErrorIs(t, err, services.ErrHasRegistrations)

		// Still there
		_, err = env.catalog.GetCourse(course.ID)
		assert.NoError(t, err)
	})

	t.Run("succeeds once the roster is empty", func(t *testing.T) {
		course := env.createCourse(t, "CS202")
		require.NoError(t, env.catalog.DeleteCourse(course.ID))

		_, err := env.catalog.GetCourse(course.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestListCoursesSearch(t *testing.T) {
	env := newTestEnv(t)

	math, err := env.catalog.CreateCourse(services.CourseInput{
		Code: "MATH10", Name: "Calculus", NameAr: "التفاضل والتكامل",
		Credits: 4, Semester: "Fall 2024",
	})
	require.NoError(t, err)
	env.createCourse(t, "CS102")
	env.createCourse(t, "CS101")

	t.Run("empty term returns all ordered by code", func(t *testing.T) {
		courses, err := env.catalog.ListCourses("")
		require.NoError(t, err)
		require.Len(t, courses, 3)
		assert.Equal(t, "CS101", courses[0].Code)
		assert.Equal(t, "CS102", courses[1].Code)
		assert.Equal(t, "MATH10", courses[2].Code)
	})

	t.Run("matches code case-insensitively", func(t *testing.T) {
		courses, err := env.catalog.ListCourses("cs1")
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, "CS101", courses[0].Code)
	})

	t.Run("matches english name", func(t *testing.T) {
		courses, err := env.catalog.ListCourses("calculus")
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, math.ID, courses[0].ID)
	})

	t.Run("matches arabic name", func(t *testing.T) {
		courses, err := env.catalog.ListCourses("التفاضل")
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, math.ID, courses[0].ID)
	})

	t.Run("no matches is an empty result", func(t *testing.T) {
		courses, err := env.catalog.ListCourses("quantum")
		require.NoError(t, err)
		assert.Empty(t, courses)
	})
}
