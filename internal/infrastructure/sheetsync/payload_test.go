package sheetsync

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-finance.backend/internal/domain/entities"
)

func TestCleanNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,20,000", "120000"},
		{"120000", "120000"},
		{" 45 000 ", "45000"},
		{"", ""},
		// Only commas and whitespace are stripped; a currency symbol
		// is retained. The sheet depends on this literal behavior.
		{"₹ 50,000 ", "₹50000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanNumeric(tt.in), "input %q", tt.in)
	}
}

func TestCleanNumericIsIdempotent(t *testing.T) {
	inputs := []string{"1,20,000", "₹ 50,000 ", "98 76", "already-clean"}
	for _, in := range inputs {
		once := CleanNumeric(in)
		assert.Equal(t, once, CleanNumeric(once), "input %q", in)
	}
}

func TestMfgYearOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01-Jan-2019 (Fresh)", "2019"},
		{"2015", "2015"},
		{"Unknown", "Unknown"},
		{"", ""},
		{"03/1998", "1998"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MfgYearOnly(tt.in), "input %q", tt.in)
	}
}

func TestBuildPayloadReservedKeys(t *testing.T) {
	lead := &entities.Lead{
		ID:           "MF6003",
		CustomerName: "Ramesh Kumar",
		Status:       entities.StatusVerified,
		CustPhoto:    "data:image/jpeg;base64,AAA",
		RCFile:       "data:image/jpeg;base64,BBB",
		CreatedAt:    time.Now(),
	}

	raw, err := json.Marshal(BuildPayload(lead))
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(raw, &m))

	// Keys the script's folder/photo logic depends on
	assert.Equal(t, "MF6003", m["caseId"])
	assert.Equal(t, "Ramesh Kumar", m["customerName"])
	assert.Equal(t, "Verified", m["status"])
	assert.Equal(t, "data:image/jpeg;base64,AAA", m["photo_cust"])
	assert.Equal(t, "data:image/jpeg;base64,BBB", m["photo_rc"])

	// Labeled sheet columns are always present, even when empty
	for _, key := range []string{
		"Name - ",
		"Date Of Birth - (Date of Birth/DOB): ",
		"AadarCard - (Your Adhar No):",
		"Guar Name - ",
		"Guar Address - (Address) :",
		"Registration No - (Regn. No.) :",
		"Mfg Year - (Manufacturing Dt.) :",
		"IDV Value - (IDV Of Value) :",
		"Insurance Premium - (Total Policy Premium) :",
		"photo_hisab",
	} {
		_, ok := m[key]
		assert.True(t, ok, "missing payload key %q", key)
	}
}

func TestBuildPayloadFlattensNestedRecords(t *testing.T) {
	lead := &entities.Lead{
		ID:           "MF6001",
		CustomerName: "Ramesh",
		GuarName:     "Mahesh",
		Status:       entities.StatusNew,
		AadhaarData: &entities.AadhaarData{
			DOB:       "01/01/1990",
			AadhaarNo: "1234 5678 9012",
			State:     "Maharashtra",
		},
		RCData: &entities.RCData{
			RegNo:   "MH12AB1234",
			MfgYear: "01-Jan-2019 (Fresh)",
		},
		InsuranceData: &entities.InsuranceData{
			PolicyNo: "POL-99",
			IDVValue: "1,20,000",
			Premium:  "₹ 5,400",
		},
	}

	p := BuildPayload(lead)
	assert.Equal(t, "Ramesh", p.Name)
	assert.Equal(t, "Mahesh", p.GuarName)
	assert.Equal(t, "1234 5678 9012", p.Aadhaar)
	assert.Equal(t, "MH12AB1234", p.RegNo)
	assert.Equal(t, "2019", p.MfgYear)
	assert.Equal(t, "120000", p.IDVValue)
	assert.Equal(t, "₹5400", p.InsPremium)

	// Guarantor columns beyond the name are reserved and empty
	assert.Empty(t, p.GuarAadhaar)
	assert.Empty(t, p.GuarAddress)
}

func TestBuildPayloadWithoutOptionalRecords(t *testing.T) {
	p := BuildPayload(&entities.Lead{ID: "MF6001", Status: entities.StatusNew})
	assert.Empty(t, p.RegNo)
	assert.Empty(t, p.MfgYear)
	assert.Empty(t, p.IDVValue)
	assert.Empty(t, p.PhotoCust)
}
