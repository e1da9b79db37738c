package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"unireg/models"
)

// AvailableCourse is a catalog entry seen through a student's eyes.
type AvailableCourse struct {
	models.Course
	IsRegistered    bool  `json:"is_registered"`
	RegisteredCount int64 `json:"registered_count"`
}

// StudentRegistration is one row of a student's own enrollment list.
type StudentRegistration struct {
	ID            uint      `json:"id"`
	CourseID      uint      `json:"course_id"`
	CourseCode    string    `json:"course_code"`
	CourseName    string    `json:"course_name"`
	CourseNameAr  string    `json:"course_name_ar"`
	Credits       int       `json:"credits"`
	Semester      string    `json:"semester"`
	RegisteredAt  time.Time `json:"registered_at"`
	Status        string    `json:"status"`
	CanUnregister bool      `json:"can_unregister"`
}

// RosterEntry is one student on a course roster.
type RosterEntry struct {
	ID           uint      `json:"id"`
	StudentID    uint      `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	AcademicYear string    `json:"academic_year"`
	RegisteredAt time.Time `json:"registered_at"`
	Status       string    `json:"status"`
}

// StudentSummary is one row of the administrator's student list.
type StudentSummary struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	AcademicYear      string    `json:"academic_year"`
	RegisteredCourses int64     `json:"registered_courses"`
	CreatedAt         time.Time `json:"created_at"`
}

// ReportsService builds the read-only projections joining catalog,
// ledger and identity data.
type ReportsService struct {
	courses     CourseStore
	enrollments EnrollmentStore
	users       UserStore
}

func NewReportsService(courses CourseStore, enrollments EnrollmentStore, users UserStore) *ReportsService {
	return &ReportsService{courses: courses, enrollments: enrollments, users: users}
}

// AvailableCourses lists every active course with the student's
// registration flag and the total registration count, ordered by code.
func (s *ReportsService) AvailableCourses(studentID uint) ([]AvailableCourse, error) {
	courses, err := s.courses.ListActive()
	if err != nil {
		return nil, err
	}

	result := make([]AvailableCourse, 0, len(courses))
	for _, course := range courses {
		registered, err := s.enrollments.Exists(studentID, course.ID)
		if err != nil {
			return nil, err
		}
		count, err := s.enrollments.CountByCourse(course.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, AvailableCourse{
			Course:          course,
			IsRegistered:    registered,
			RegisteredCount: count,
		})
	}
	return result, nil
}

// StudentRegistrations lists a student's enrollments, newest first.
func (s *ReportsService) StudentRegistrations(studentID uint) ([]StudentRegistration, error) {
	enrollments, err := s.enrollments.ByStudent(studentID)
	if err != nil {
		return nil, err
	}

	result := make([]StudentRegistration, 0, len(enrollments))
	for _, e := range enrollments {
		result = append(result, StudentRegistration{
			ID:            e.ID,
			CourseID:      e.CourseID,
			CourseCode:    e.Course.Code,
			CourseName:    e.Course.Name,
			CourseNameAr:  e.Course.NameAr,
			Credits:       e.Course.Credits,
			Semester:      e.Course.Semester,
			RegisteredAt:  e.RegisteredAt,
			Status:        e.Status,
			CanUnregister: e.Status == models.StatusActive,
		})
	}
	return result, nil
}

// CourseRoster lists a course's enrollments ordered by student name.
func (s *ReportsService) CourseRoster(courseID uint) ([]RosterEntry, error) {
	if _, err := s.courses.GetByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	enrollments, err := s.enrollments.ByCourse(courseID)
	if err != nil {
		return nil, err
	}

	result := make([]RosterEntry, 0, len(enrollments))
	for _, e := range enrollments {
		result = append(result, RosterEntry{
			ID:           e.ID,
			StudentID:    e.StudentID,
			StudentName:  e.Student.Name,
			StudentEmail: e.Student.Email,
			AcademicYear: e.Student.AcademicYear,
			RegisteredAt: e.RegisteredAt,
			Status:       e.Status,
		})
	}
	return result, nil
}

// Students lists every student with their enrollment count, ordered by
// name. Admin accounts are excluded by role.
func (s *ReportsService) Students() ([]StudentSummary, error) {
	users, err := s.users.ListByRole(models.RoleStudent)
	if err != nil {
		return nil, err
	}

	result := make([]StudentSummary, 0, len(users))
	for _, u := range users {
		count, err := s.enrollments.CountByStudent(u.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, StudentSummary{
			ID:                u.ID,
			Name:              u.Name,
			Email:             u.Email,
			AcademicYear:      u.AcademicYear,
			RegisteredCourses: count,
			CreatedAt:         u.CreatedAt,
		})
	}
	return result, nil
}
