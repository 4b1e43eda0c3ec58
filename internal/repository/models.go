package repository

// User roles. Role is stored as free text (the API does not constrain
// it); only the professor role carries meaning, for listing deletion.
const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
)

// User is the profile document stored for an account, keyed by the
// identity provider's account id. Users are created on signup and
// never updated or deleted by this service.
type User struct {
	ID                string   `json:"id,omitempty"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Role              string   `json:"role"`
	ResearchInterests []string `json:"research_interests"`
}

// Listing is a research opportunity listing. ProfessorID is an
// unvalidated reference: nothing guarantees it names an existing user,
// let alone a professor.
type Listing struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ProfessorID string   `json:"professor_id"`
	Eligibility []string `json:"eligibility"`
	Tags        []string `json:"tags"`
}

// Application is a student's application to a listing. StudentID and
// ListingID are unvalidated references; the same student may apply to
// the same listing any number of times.
type Application struct {
	ID                 string `json:"id,omitempty"`
	StudentID          string `json:"student_id"`
	ListingID          string `json:"listing_id"`
	StudentName        string `json:"student_name"`
	StudentEmail       string `json:"student_email"`
	StatementOfPurpose string `json:"statement_of_purpose"`
}
