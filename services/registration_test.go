package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"unireg/models"
	"unireg/services"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	course := env.createCourse(t, "CS101")
	student := env.createStudent(t, "Omar", "omar@university.com")

	enrollment, err := env.ledger.Register(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, enrollment.Status)
	assert.False(t, enrollment.RegisteredAt.IsZero())

	registered, err := env.ledger.IsRegistered(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, registered)
}

func TestRegisterTwiceFails(t *testing.T) {
	env := newTestEnv(t)
	course := env.createCourse(t, "CS101")
	student := env.createStudent(t, "Omar", "omar@university.com")

	_, err := env.ledger.Register(student.ID, course.ID)
	require.NoError(t, err)

	_, err = env.ledger.Register(student.ID, course.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyRegistered)
}

func TestRegisterUnavailableCourse(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "Omar", "omar@university.com")

	t.Run("missing course", func(t *testing.T) {
		_, err := env.ledger.Register(student.ID, 9999)
		assert.ErrorIs(t, err, services.ErrCourseUnavailable)
	})

	t.Run("inactive course", func(t *testing.T) {
		course := env.createCourse(t, "CS105")
		in := courseInput("CS105")
		inactive := false
		in.IsActive = &inactive
		_, err := env.catalog.UpdateCourse(course.ID, in)
		require.NoError(t, err)

		_, err = env.ledger.Register(student.ID, course.ID)
		assert.ErrorIs(t, err, services.ErrCourseUnavailable)
	})
}

// The composite unique index is the last line of defense when two
// registrations race past the existence check. The store must report
// the duplicate distinguishably so the service can map it.
func TestDuplicateInsertSurfacesAsConflict(t *testing.T) {
	env := newTestEnv(t)
	course := env.createCourse(t, "CS101")
	student := env.createStudent(t, "Omar", "omar@university.com")

	first := models.Enrollment{
		StudentID: student.ID, CourseID: course.ID,
		Status: models.StatusActive, RegisteredAt: time.Now(),
	}
	require.NoError(t, env.enrollments.Create(&first))

	second := models.Enrollment{
		StudentID: student.ID, CourseID: course.ID,
		Status: models.StatusActive, RegisteredAt: time.Now(),
	}
	err := env.enrollments.Create(&second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUnregister(t *testing.T) {
	env := newTestEnv(t)
	course := env.createCourse(t, "CS101")
	owner := env.createStudent(t, "Omar", "omar@university.com")
	other := env.createStudent(t, "Sara", "sara@university.com")

	enrollment, err := env.ledger.Register(owner.ID, course.ID)
	require.NoError(t, err)

	t.Run("missing registration", func(t *testing.T) {
		_, err := env.ledger.Unregister(9999, owner.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("non-owner is rejected and nothing changes", func(t *testing.T) {
		_, err := env.ledger.Unregister(enrollment.ID, other.ID)
		assert.ErrorIs(t, err, services.ErrNotOwner)

		registered, err := env.ledger.IsRegistered(owner.ID, course.ID)
		require.NoError(t, err)
		assert.True(t, registered)
	})

	t.Run("non-active status is rejected", func(t *testing.T) {
		err := env.db.Model(&models.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Update("status", "Completed").Error
		require.NoError(t, err)

		_, err = env.ledger.Unregister(enrollment.ID, owner.ID)
		assert.ErrorIs(t, err, services.ErrNotActive)

		// Restore for the next subtest
		require.NoError(t, env.db.Model(&models.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Update("status", models.StatusActive).Error)
	})

	t.Run("owner removes active registration", func(t *testing.T) {
		removed, err := env.ledger.Unregister(enrollment.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, course.ID, removed.CourseID)

		registered, err := env.ledger.IsRegistered(owner.ID, course.ID)
		require.NoError(t, err)
		assert.False(t, registered)
	})
}

func TestRegisterAgainAfterUnregister(t *testing.T) {
	env := newTestEnv(t)
	course := env.createCourse(t, "CS101")
	student := env.createStudent(t, "Omar", "omar@university.com")

	enrollment, err := env.ledger.Register(student.ID, course.ID)
	require.NoError(t, err)
	_, err = env.ledger.Unregister(enrollment.ID, student.ID)
	require.NoError(t, err)

	// The pair is free again once the enrollment is gone.
	_, err = env.ledger.Register(student.ID, course.ID)
	assert.NoError(t, err)
}
