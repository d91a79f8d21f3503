package models

import "time"

// Registration represents a student's sign-up for a course. Uniqueness over
// (email, courseName) is enforced by the database, not by application code:
// two concurrent submissions for the same pair must not both succeed.
type Registration struct {
	ID                  string    `json:"id"`
	FullName            string    `json:"fullName"`
	Email               string    `json:"email"`
	MobileNumber        string    `json:"mobileNumber"`
	HighestEducation    string    `json:"highestEducation,omitempty"`
	Profession          string    `json:"profession,omitempty"`
	Institute           string    `json:"institute,omitempty"`
	CourseName          string    `json:"courseName"`
	ReasonForJoining    string    `json:"reasonForJoining,omitempty"`
	AdditionalSkills    string    `json:"additionalSkills,omitempty"`
	LearningPreferences string    `json:"learningPreferences,omitempty"`
	RegisteredAt        time.Time `json:"registeredAt"`
}

// CreateRegistrationRequest is the public registration form.
type CreateRegistrationRequest struct {
	FullName            string `json:"fullName" binding:"required,max=100"`
	Email               string `json:"email" binding:"required,max=255"`
	MobileNumber        string `json:"mobileNumber" binding:"required,max=20"`
	HighestEducation    string `json:"highestEducation" binding:"max=200"`
	Profession          string `json:"profession" binding:"max=200"`
	Institute           string `json:"institute" binding:"max=200"`
	CourseName          string `json:"courseName" binding:"required,max=200"`
	ReasonForJoining    string `json:"reasonForJoining" binding:"max=2000"`
	AdditionalSkills    string `json:"additionalSkills" binding:"max=2000"`
	LearningPreferences string `json:"learningPreferences" binding:"max=2000"`
}

type RegistrationResponse struct {
	Message string `json:"message"`
}
