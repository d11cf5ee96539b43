package loan

// CreateLoanInput carries one loan application. InterestRate is optional;
// when nil the default annual rate applies.
type CreateLoanInput struct {
	Amount       float64
	TermYears    int
	Category     string
	Purpose      string
	InterestRate *float64
	Documents    []DocumentInput
}

type DocumentInput struct {
	Name string
	URL  string
}
