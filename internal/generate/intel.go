package generate

import (
	"strings"

	"github.com/jonathan/placement-advisor/internal/types"
)

// Known enterprise company names, matched as substrings of the lowered input.
var enterpriseCompanies = []string{
	"amazon", "microsoft", "google", "meta", "facebook", "apple", "netflix",
	"oracle", "ibm", "accenture", "tcs", "infosys", "wipro", "cognizant",
	"hcl", "tech mahindra", "capgemini", "deloitte", "ey", "kpmg", "pwc",
	"intel", "qualcomm", "cisco", "salesforce", "adobe", "vmware",
	"sap", "samsung", "lg", "sony", "toyota", "honda", "bmw", "mercedes",
	"jpmorgan", "goldman sachs", "morgan stanley", "bank of america",
	"wells fargo", "citigroup", "hsbc", "barclays", "deutsche bank",
}

// Known mid-size company names.
var midSizeCompanies = []string{
	"zoho", "freshworks", "postman", "razorpay", "paytm", "swiggy",
	"zomato", "ola", "uber india", "flipkart", "myntra", "phonepe",
	"byju's", "unacademy", "vedantu", "cred", "groww", "zerodha",
	"hashedin", "thoughtworks", "nagarro", "to the new", "srijan",
}

// industryKeyword pairs an industry name with the substrings that imply it.
// Ordered so the first match wins.
type industryKeyword struct {
	industry string
	keywords []string
}

var industryKeywords = []industryKeyword{
	{"Finance & Banking", []string{"bank", "finance", "fintech", "payment", "trading", "investment", "insurance"}},
	{"Healthcare & Pharma", []string{"health", "medical", "pharma", "hospital", "clinic", "biotech"}},
	{"E-commerce & Retail", []string{"ecommerce", "retail", "shopping", "marketplace", "delivery"}},
	{"Education & EdTech", []string{"education", "edtech", "learning", "training", "academy", "university"}},
	{"Gaming & Entertainment", []string{"game", "gaming", "entertainment", "media", "streaming"}},
	{"Automotive", []string{"automotive", "vehicle", "car", "auto", "mobility"}},
	{"Consulting & Services", []string{"consulting", "services", "solutions", "outsourcing"}},
}

// industryOverrides re-assigns the industry for explicitly known company
// names, applied after the keyword pass.
var industryOverrides = []industryKeyword{
	{"E-commerce & Retail", []string{"amazon", "flipkart", "myntra", "swiggy", "zomato"}},
	{"Technology & Software", []string{"google", "microsoft", "meta", "facebook", "apple", "netflix"}},
	{"IT Consulting & Services", []string{"tcs", "infosys", "wipro", "cognizant", "hcl", "accenture"}},
	{"Finance & Banking", []string{"jpmorgan", "goldman", "morgan stanley", "bank of america", "wells fargo"}},
}

// Intel builds a heuristic company profile from a free-text company name.
// Returns nil iff the name is blank after trimming.
func Intel(companyName string) *types.CompanyIntel {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil
	}
	lowered := strings.ToLower(name)

	size := types.SizeStartup
	sizeLabel := "Startup (<200 employees)"
	if matchesAny(lowered, enterpriseCompanies) {
		size = types.SizeEnterprise
		sizeLabel = "Enterprise (2000+ employees)"
	} else if matchesAny(lowered, midSizeCompanies) {
		size = types.SizeMidSize
		sizeLabel = "Mid-size (200–2000 employees)"
	}

	industry := "Technology Services"
	for _, entry := range industryKeywords {
		if matchesAny(lowered, entry.keywords) {
			industry = entry.industry
			break
		}
	}
	for _, entry := range industryOverrides {
		if matchesAny(lowered, entry.keywords) {
			industry = entry.industry
			break
		}
	}

	var hiringFocus string
	switch size {
	case types.SizeEnterprise:
		hiringFocus = "Structured DSA + Core Fundamentals. Expect rigorous algorithmic rounds with emphasis on time/space complexity, system design at scale, and deep computer science fundamentals."
	case types.SizeMidSize:
		hiringFocus = "Balanced approach: DSA fundamentals + practical problem solving. Focus on building scalable features and working with modern tech stacks."
	default:
		hiringFocus = "Practical problem solving + Stack depth. Emphasis on getting things done, end-to-end ownership, and deep expertise in relevant technologies."
	}

	return &types.CompanyIntel{
		Name:        name,
		Industry:    industry,
		Size:        size,
		SizeLabel:   sizeLabel,
		HiringFocus: hiringFocus,
	}
}

func matchesAny(lowered string, candidates []string) bool {
	for _, candidate := range candidates {
		if strings.Contains(lowered, candidate) {
			return true
		}
	}
	return false
}
