package carbonsdk

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Accounts
// ============================================================================

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// MessageResponse acknowledges a write that has nothing else to return.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserResponse is the authenticated user's profile. The password hash is
// never included.
type UserResponse struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	QuizAnswers *QuizAnswers `json:"quizAnswers,omitempty"`
}

// ============================================================================
// Quiz
// ============================================================================

// QuizAnswers is the five-question lifestyle quiz. Known values:
//
//	transportation    Never | Occasionally | Frequently
//	meatConsumption   Frequently | Occasionally | Rarely
//	recycling         Never | Rarely | Frequently
//	energyEfficiency  Yes | No
//	electricityUsage  High | Moderate | Low
type QuizAnswers struct {
	Transportation   string `json:"transportation"`
	MeatConsumption  string `json:"meatConsumption"`
	Recycling        string `json:"recycling"`
	EnergyEfficiency string `json:"energyEfficiency"`
	ElectricityUsage string `json:"electricityUsage"`
}

type SuggestionsResponse struct {
	Suggestions string `json:"suggestions"`
}

// ============================================================================
// Emissions
// ============================================================================

type Vehicle struct {
	Type           string  `json:"type"`
	EmissionFactor float64 `json:"emissionFactor"`
}

type CalculateRequest struct {
	VehicleType string  `json:"vehicleType"`
	Distance    float64 `json:"distance"`
}

type CalculateResponse struct {
	Emission float64 `json:"emission"`
}

// ============================================================================
// Proxies
// ============================================================================

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Article is one news item as newsapi.org returns it. Nullable upstream
// fields are pointers. PublishedAt stays a string because the server relays
// whatever the feed sent.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      *string       `json:"author"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	URL         string        `json:"url"`
	URLToImage  *string       `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     *string       `json:"content"`
}

type ArticleSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
