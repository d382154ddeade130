package model

// CompanyLead is a company identified by the generative extractor during a
// criteria search. Leads are ephemeral; they live only within one pipeline run.
type CompanyLead struct {
	Name            string   `json:"name"`
	Domain          string   `json:"domain"`
	SuggestedEmails []string `json:"suggested_emails,omitempty"`
}
