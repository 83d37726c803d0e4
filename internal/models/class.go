package models

// ClassRecord represents a single class listing, real or fabricated
type ClassRecord struct {
	ClassName   string `json:"class_name"`
	Description string `json:"description"`
	ClassCode   string `json:"class_code"`
	Real        bool   `json:"real"`
}

// Pair is one quiz question: a real class matched with a fake one.
// IDs are dense and 1-based, assigned at load time.
type Pair struct {
	ID        int
	RealClass ClassRecord
	FakeClass ClassRecord
}
