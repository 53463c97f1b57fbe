package widget

const (
	SelectTimeline     = "timeline"
	SelectBudget       = "budget"
	SelectConsultation = "consultation"
)

var TimelineSelect = Select{
	ID:          SelectTimeline,
	Label:       "Project timeline",
	Placeholder: "Select a timeline",
	Options: []Option{
		{Value: "ASAP", Label: "As soon as possible"},
		{Value: "1-3 months", Label: "1-3 months"},
		{Value: "3-6 months", Label: "3-6 months"},
		{Value: "Flexible", Label: "Flexible"},
	},
}

var BudgetSelect = Select{
	ID:          SelectBudget,
	Label:       "Budget",
	Placeholder: "Select a budget",
	Options: []Option{
		{Value: "< $1k", Label: "Under $1,000"},
		{Value: "$1k-$5k", Label: "$1,000 - $5,000"},
		{Value: "$5k-$10k", Label: "$5,000 - $10,000"},
		{Value: "$10k+", Label: "$10,000+"},
	},
}

var ConsultationSelect = Select{
	ID:          SelectConsultation,
	Label:       "Would you like a free consultation call?",
	Placeholder: "Select an option",
	Options: []Option{
		{Value: "Yes", Label: "Yes, schedule a call"},
		{Value: "No", Label: "No, email is fine"},
	},
}

// ContactSelects lists the selects in the order the form renders them.
func ContactSelects() []Select {
	return []Select{TimelineSelect, BudgetSelect, ConsultationSelect}
}
