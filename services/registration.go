package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"unireg/models"
)

// RegistrationService is the enrollment ledger. It creates and removes
// student-course links and enforces the per-student per-course
// uniqueness rule together with the database index.
type RegistrationService struct {
	enrollments EnrollmentStore
	courses     CourseStore
}

func NewRegistrationService(enrollments EnrollmentStore, courses CourseStore) *RegistrationService {
	return &RegistrationService{enrollments: enrollments, courses: courses}
}

// Register enrolls a student in an active course. A second registration
// for the same pair fails with ErrAlreadyRegistered regardless of the
// existing enrollment's status.
func (s *RegistrationService) Register(studentID, courseID uint) (*models.Enrollment, error) {
	exists, err := s.enrollments.Exists(studentID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	course, err := s.courses.GetByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCourseUnavailable
	}
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, ErrCourseUnavailable
	}

	enrollment := models.Enrollment{
		StudentID:    studentID,
		CourseID:     courseID,
		Status:       models.StatusActive,
		RegisteredAt: time.Now().UTC(),
	}

	if err := s.enrollments.Create(&enrollment); err != nil {
		// Concurrent duplicate registrations race past the existence
		// check; the composite unique index lets exactly one through.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return &enrollment, nil
}

// Unregister removes a student's own active enrollment and returns the
// removed record.
func (s *RegistrationService) Unregister(enrollmentID, requestingStudentID uint) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(enrollmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if enrollment.StudentID != requestingStudentID {
		return nil, ErrNotOwner
	}
	if enrollment.Status != models.StatusActive {
		return nil, ErrNotActive
	}

	if err := s.enrollments.Delete(enrollmentID); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// IsRegistered reports whether a student holds an enrollment for the
// course, in any status.
func (s *RegistrationService) IsRegistered(studentID, courseID uint) (bool, error) {
	return s.enrollments.Exists(studentID, courseID)
}
