package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-advisor/internal/types"
)

func TestIntel_BlankNameYieldsNil(t *testing.T) {
	assert.Nil(t, Intel(""))
	assert.Nil(t, Intel("   "))
}

func TestIntel_SizeClassification(t *testing.T) {
	tests := []struct {
		company string
		size    types.CompanySize
	}{
		{"Google", types.SizeEnterprise},
		{"Infosys Ltd", types.SizeEnterprise},
		{"Zoho Corp", types.SizeMidSize},
		{"Razorpay", types.SizeMidSize},
		{"Some Unknown Startup", types.SizeStartup},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			intel := Intel(tt.company)
			require.NotNil(t, intel)
			assert.Equal(t, tt.size, intel.Size)
		})
	}
}

func TestIntel_SizeLabels(t *testing.T) {
	assert.Equal(t, "Enterprise (2000+ employees)", Intel("Microsoft").SizeLabel)
	assert.Equal(t, "Mid-size (200–2000 employees)", Intel("Freshworks").SizeLabel)
	assert.Equal(t, "Startup (<200 employees)", Intel("TinyShop").SizeLabel)
}

func TestIntel_IndustryFromKeywords(t *testing.T) {
	assert.Equal(t, "Finance & Banking", Intel("Acme Fintech").Industry)
	assert.Equal(t, "Healthcare & Pharma", Intel("MediCare Health").Industry)
	assert.Equal(t, "Education & EdTech", Intel("BrightLearning").Industry)
	assert.Equal(t, "Technology Services", Intel("Quorix").Industry)
}

func TestIntel_KnownNameOverridesKeywords(t *testing.T) {
	// "amazon" is e-commerce by override even though no keyword matches.
	assert.Equal(t, "E-commerce & Retail", Intel("Amazon").Industry)
	assert.Equal(t, "Technology & Software", Intel("Google").Industry)
	assert.Equal(t, "IT Consulting & Services", Intel("Infosys").Industry)
}

func TestIntel_HiringFocusTracksSize(t *testing.T) {
	enterprise := Intel("Oracle")
	assert.Contains(t, enterprise.HiringFocus, "Structured DSA")

	mid := Intel("Postman")
	assert.Contains(t, mid.HiringFocus, "Balanced approach")

	startup := Intel("GarageCo")
	assert.Contains(t, startup.HiringFocus, "Practical problem solving")
}

func TestIntel_PreservesGivenName(t *testing.T) {
	intel := Intel("  Google  ")
	require.NotNil(t, intel)
	assert.Equal(t, "Google", intel.Name)
}
