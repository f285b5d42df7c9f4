package authservice

// ResultType classifies the outcome of a service operation. Business
// outcomes travel inside the envelope; infrastructure faults travel as
// plain errors alongside it.
type ResultType string

const (
	Success       ResultType = "Success"
	DataConflicts ResultType = "DataConflicts"
	DataNotFound  ResultType = "DataNotFound"
)

// Communication is the uniform envelope carrying an operation's outcome,
// a human-readable message (empty on success) and a payload where one
// applies.
type Communication[T any] struct {
	Result  ResultType
	Message string
	Data    T
}
