package models

import "time"

// CourseStatus controls whether a course accepts registrations.
type CourseStatus string

const (
	CourseStatusActive   CourseStatus = "active"
	CourseStatusInactive CourseStatus = "inactive"
)

func (s CourseStatus) IsValid() bool {
	return s == CourseStatusActive || s == CourseStatusInactive
}

// Course represents a published course proposal. The JSON keys mirror the
// public site's form field names.
type Course struct {
	ID                       string       `json:"id"`
	Name                     string       `json:"name"`
	Email                    string       `json:"email"`
	MobNumber                string       `json:"mobNumber"`
	CourseName               string       `json:"courseName"`
	TDurationCourse          string       `json:"tDurationCourse"`
	ClassDays                string       `json:"classDays"`
	StartTiming              string       `json:"startTiming"`
	Venue                    string       `json:"venue"`
	DurationOfClass          string       `json:"durationOfClass,omitempty"`
	NoSeats                  string       `json:"noSeats,omitempty"`
	TeacherHighQualification string       `json:"teacherHighQualification,omitempty"`
	InstAff                  string       `json:"instAff,omitempty"`
	Department               string       `json:"department,omitempty"`
	Prerequisites            string       `json:"prerequisites"`
	Description              string       `json:"description,omitempty"`
	Status                   CourseStatus `json:"status"`
	CreatedAt                time.Time    `json:"createdAt"`
	UpdatedAt                time.Time    `json:"updatedAt"`
}

// CreateCourseRequest is the public course proposal form.
type CreateCourseRequest struct {
	Name                     string `json:"name" binding:"required,max=100"`
	Email                    string `json:"email" binding:"required,email,max=255"`
	MobNumber                string `json:"mobNumber" binding:"required,max=20"`
	CourseName               string `json:"courseName" binding:"required,max=200"`
	TDurationCourse          string `json:"tDurationCourse" binding:"required,max=100"`
	ClassDays                string `json:"classDays" binding:"required,max=200"`
	StartTiming              string `json:"startTiming" binding:"required,max=100"`
	Venue                    string `json:"venue" binding:"required,max=200"`
	DurationOfClass          string `json:"durationOfClass" binding:"max=100"`
	NoSeats                  string `json:"noSeats" binding:"max=20"`
	TeacherHighQualification string `json:"teacherHighQualification" binding:"max=200"`
	InstAff                  string `json:"instAff" binding:"max=200"`
	Department               string `json:"department" binding:"max=200"`
	Prerequisites            string `json:"prerequisites" binding:"required,max=500"`
	Description              string `json:"description" binding:"max=5000"`
}

// UpdateCourseRequest carries a partial course update; nil fields are left
// untouched. Status changes go through the dedicated status endpoint but are
// accepted here too when valid.
type UpdateCourseRequest struct {
	Name                     *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Email                    *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	MobNumber                *string `json:"mobNumber,omitempty" binding:"omitempty,max=20"`
	CourseName               *string `json:"courseName,omitempty" binding:"omitempty,max=200"`
	TDurationCourse          *string `json:"tDurationCourse,omitempty" binding:"omitempty,max=100"`
	ClassDays                *string `json:"classDays,omitempty" binding:"omitempty,max=200"`
	StartTiming              *string `json:"startTiming,omitempty" binding:"omitempty,max=100"`
	Venue                    *string `json:"venue,omitempty" binding:"omitempty,max=200"`
	DurationOfClass          *string `json:"durationOfClass,omitempty" binding:"omitempty,max=100"`
	NoSeats                  *string `json:"noSeats,omitempty" binding:"omitempty,max=20"`
	TeacherHighQualification *string `json:"teacherHighQualification,omitempty" binding:"omitempty,max=200"`
	InstAff                  *string `json:"instAff,omitempty" binding:"omitempty,max=200"`
	Department               *string `json:"department,omitempty" binding:"omitempty,max=200"`
	Prerequisites            *string `json:"prerequisites,omitempty" binding:"omitempty,max=500"`
	Description              *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Status                   *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

type UpdateCourseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type CourseMutationResponse struct {
	Message string  `json:"message"`
	Course  *Course `json:"course"`
}
