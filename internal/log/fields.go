package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldError     = "error"

	FieldPeriod       = "period"
	FieldCacheKey     = "cache_key"
	FieldTable        = "table"
	FieldWallet       = "wallet"
	FieldOwner        = "owner"
	FieldGoal         = "goal"
	FieldTransactions = "transactions"
	FieldBackend      = "backend"
)

// Components defines standard component names
const (
	ComponentApp       = "dasbor"
	ComponentHTTP      = "http"
	ComponentDashboard = "dashboard"
	ComponentTables    = "tables"
	ComponentCache     = "cache"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentAdvisor   = "advisor"
	ComponentExport    = "export"
)
