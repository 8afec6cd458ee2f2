package entities

import (
	"time"
)

// Status represents the lifecycle stage of a lead
type Status string

const (
	StatusNew      Status = "New"
	StatusVerified Status = "Verified"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ApprovalDecision is the action recorded during processing.
// The empty string means no decision has been taken yet.
type ApprovalDecision string

const (
	DecisionApprove ApprovalDecision = "Approve"
	DecisionReject  ApprovalDecision = "Reject"
	DecisionNone    ApprovalDecision = ""
)

// VerificationData holds the field/credit verification checks for a lead
type VerificationData struct {
	FieldVerified  bool   `json:"fieldVerified"`
	CreditVerified bool   `json:"creditVerified"`
	Remarks        string `json:"remarks"`
}

// ApprovalData holds the loan decision recorded during processing
type ApprovalData struct {
	Status       ApprovalDecision `json:"status"`
	LoanAmount   string           `json:"loanAmount"`
	Tenure       string           `json:"tenure"` // months
	InterestRate string           `json:"interestRate"`
}

// AadhaarData is the structured extraction from an Aadhaar card photo
type AadhaarData struct {
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	AadhaarNo string `json:"aadhaarNo"`
	Pincode   string `json:"pincode"`
	State     string `json:"state"`
	City      string `json:"city"`
	Area      string `json:"area"`
	Address   string `json:"address"`
}

// RCData is the structured extraction from a vehicle registration certificate
type RCData struct {
	RegNo        string `json:"regNo"`
	OwnerName    string `json:"ownerName"`
	VehicleType  string `json:"vehicleType"`
	MfgYear      string `json:"mfgYear"`
	Make         string `json:"make"`
	MakeClass    string `json:"makeClass"`
	RegAuthority string `json:"regAuthority"`
	EngineNo     string `json:"engineNo"`
	ChassisNo    string `json:"chassisNo"`
	FuelType     string `json:"fuelType"`
	Color        string `json:"color"`
	RegDate      string `json:"regDate"`
	ExpiryDate   string `json:"expiryDate"`
}

// InsuranceData is the structured extraction from a vehicle insurance document
type InsuranceData struct {
	Company         string `json:"company"`
	Type            string `json:"type"`
	PolicyNo        string `json:"policyNo"`
	NameTransfer    string `json:"nameTransfer"`
	EndorsementDate string `json:"endorsementDate"`
	ExpiryDate      string `json:"expiryDate"`
	IDVValue        string `json:"idvValue"`
	Premium         string `json:"premium"`
}

// Lead represents one vehicle-finance case.
// Attachment slots hold base64 data URLs and are omitted from the
// persisted blob when absent, matching the v2 storage schema.
type Lead struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Mobile       string `json:"mobile"`
	BrokerName   string `json:"brokerName"`

	AadhaarData   *AadhaarData   `json:"aadhaarData,omitempty"`
	RCData        *RCData        `json:"rcData,omitempty"`
	InsuranceData *InsuranceData `json:"insuranceData,omitempty"`

	// Customer documents
	CustAadhaarFront string `json:"custAadhaarFront,omitempty"`
	CustAadhaarBack  string `json:"custAadhaarBack,omitempty"`
	CustPan          string `json:"custPan,omitempty"`
	CustPhoto        string `json:"custPhoto,omitempty"`

	// Guarantor
	GuarName         string `json:"guarName"`
	GuarAadhaarFront string `json:"guarAadhaarFront,omitempty"`
	GuarAadhaarBack  string `json:"guarAadhaarBack,omitempty"`
	GuarPan          string `json:"guarPan,omitempty"`
	GuarPhoto        string `json:"guarPhoto,omitempty"`

	// Vehicle documents
	RCFile        string `json:"rcFile,omitempty"`
	InsuranceFile string `json:"insuranceFile,omitempty"`

	// Agreement documents
	AgreementPhoto   string `json:"agreementPhoto,omitempty"`
	HisabChittiPhoto string `json:"hisabChittiPhoto,omitempty"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	Verification *VerificationData `json:"verification,omitempty"`
	Approval     *ApprovalData     `json:"approval,omitempty"`
}

// LeadUpdate is a shallow-merge patch applied during processing.
// Nil fields are left untouched; non-nil fields fully replace the
// prior top-level value.
type LeadUpdate struct {
	Verification *VerificationData
	Approval     *ApprovalData
	Status       *Status
}

// DeriveStatus computes the lead status from its verification and
// approval records. An approval decision always dominates the
// verification flags; with no decision and no verification flag set
// the current status is kept as-is.
func DeriveStatus(current Status, verification *VerificationData, approval *ApprovalData) Status {
	if approval != nil {
		switch approval.Status {
		case DecisionApprove:
			return StatusApproved
		case DecisionReject:
			return StatusRejected
		}
	}
	if verification != nil && (verification.FieldVerified || verification.CreditVerified) {
		return StatusVerified
	}
	return current
}
