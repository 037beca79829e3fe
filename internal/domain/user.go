package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleManager   = "manager"
)

// User is a portal account. Candidates carry profile relations and
// interview state; managers only use the identity fields.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CEP       string `json:"cep"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Role      string `json:"role"`

	// Interview state. Invariant: SelectedForInterview is true exactly when
	// both InterviewDate and InterviewTime are set.
	SelectedForInterview bool    `json:"selected_for_interview"`
	InterviewDate        *string `json:"interview_date"` // YYYY-MM-DD
	InterviewTime        *string `json:"interview_time"` // HH:MM

	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Skills     []Skill     `json:"skills"`
	Educations []Education `json:"educations"`
}

// Education is owned by exactly one user and is cascade-deleted with it.
type Education struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CourseName  string `json:"course_name"`
	Institution string `json:"institution"`
	ConcludedAt string `json:"concluded_at"` // YYYY-MM-DD
}

// EducationInput is one education entry as submitted by clients.
type EducationInput struct {
	CourseName  string `json:"courseName" validate:"required,max=100"`
	Institution string `json:"institution" validate:"required,max=100"`
	ConcludedAt string `json:"concludedAt" validate:"required,datetime=2006-01-02"`
}

// RegisterInput carries a registration request. Address, City and State are
// the fallback values used when the CEP lookup cannot resolve the code.
type RegisterInput struct {
	Name                 string           `json:"name" validate:"required,max=100"`
	BirthDate            string           `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Email                string           `json:"email" validate:"required,email"`
	Phone                string           `json:"phone" validate:"required,phone"`
	Password             string           `json:"password" validate:"required,min=6,max=50"`
	PasswordConfirmation string           `json:"password_confirmation" validate:"required,eqfield=Password"`
	CEP                  string           `json:"cep" validate:"required,cep"`
	Role                 string           `json:"role" validate:"omitempty,oneof=candidate manager"`
	Address              string           `json:"address"`
	City                 string           `json:"city"`
	State                string           `json:"state" validate:"omitempty,max=2"`
	SkillIDs             []int64          `json:"skills" validate:"omitempty,dive,gt=0"`
	Educations           []EducationInput `json:"educations" validate:"omitempty,dive"`
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched; a non-nil SkillIDs or Educations replaces the whole set.
type UpdateProfileInput struct {
	Name       *string           `json:"name" validate:"omitempty,max=100"`
	Phone      *string           `json:"phone" validate:"omitempty,phone"`
	CEP        *string           `json:"cep" validate:"omitempty,cep"`
	Address    *string           `json:"address"`
	City       *string           `json:"city"`
	State      *string           `json:"state" validate:"omitempty,max=2"`
	SkillIDs   *[]int64          `json:"skills" validate:"omitempty,dive,gt=0"`
	Educations *[]EducationInput `json:"educations" validate:"omitempty,dive"`
}

// CandidateFilter selects a page of the candidate directory.
type CandidateFilter struct {
	Page   int
	Limit  int
	Search string // case-insensitive substring on name
	Skill  string // case-insensitive substring on an associated skill name
}

// InterviewFilter selects a page of scheduled interviews.
type InterviewFilter struct {
	Page  int
	Limit int
	Date  string // optional YYYY-MM-DD exact match
}

type UserRepository interface {
	// Create inserts the user together with its skill links and education
	// rows in a single transaction.
	Create(ctx context.Context, user *User, skillIDs []int64, educations []Education) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetWithRelations(ctx context.Context, id int64) (*User, error)
	// UpdateProfile updates scalar fields and, when the replace flags are
	// set, swaps the full skill/education sets in the same transaction.
	UpdateProfile(ctx context.Context, user *User, skillIDs []int64, educations []Education, replaceSkills, replaceEducations bool) error
	Delete(ctx context.Context, id int64) error
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]User, int64, error)
	ListScheduled(ctx context.Context, filter InterviewFilter) ([]User, int64, error)
	// UpdateInterview persists the interview state tuple. Date and timeOfDay
	// must both be set or both be nil.
	UpdateInterview(ctx context.Context, id int64, selected bool, date, timeOfDay *string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	CurrentUser(ctx context.Context, id int64) (*User, error)
	Me(ctx context.Context, id int64) (*User, error)
	Logout(ctx context.Context, token string) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (*User, error)
	DeleteAccount(ctx context.Context, id int64) error
	LookupAddress(ctx context.Context, cep string) (*Address, error)
}

type ManagerUsecase interface {
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]User, int64, error)
	GetCandidate(ctx context.Context, id int64) (*User, error)
	ScheduleInterview(ctx context.Context, candidateID, managerID int64, date, timeOfDay string) (*InterviewSchedule, error)
	RescheduleInterview(ctx context.Context, candidateID, managerID int64, date, timeOfDay string) (*InterviewSchedule, error)
	CancelInterview(ctx context.Context, candidateID int64) error
	ListScheduledInterviews(ctx context.Context, filter InterviewFilter) ([]User, int64, error)
}
