package sheetsync

import (
	"regexp"
	"strings"
	"unicode"

	"vehicle-finance.backend/internal/domain/entities"
)

var yearRun = regexp.MustCompile(`\d{4}`)

// Payload is the flattened record posted to the script endpoint.
// caseId, customerName, status and the photo_* keys drive the remote
// script's folder and photo placement logic and must not be renamed;
// the labeled keys become sheet column headers. Field order is the
// column order the sheet expects.
type Payload struct {
	CaseID       string `json:"caseId"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`

	// Aadhaar, customer
	Name    string `json:"Name - "`
	DOB     string `json:"Date Of Birth - (Date of Birth/DOB): "`
	Aadhaar string `json:"AadarCard - (Your Adhar No):"`
	Pincode string `json:"PIN Code - As per Adhar card "`
	State   string `json:"State - As per Adhar card "`
	City    string `json:"City - As per Adhar card "`
	Area    string `json:"Area - As per Adhar card "`
	Address string `json:"Address - (Address) :"`

	// Aadhaar, guarantor. Only the name is captured today; the other
	// columns are reserved in the sheet and always sent empty.
	GuarName    string `json:"Guar Name - "`
	GuarDOB     string `json:"Guar Date Of Birth - (Date of Birth/DOB): "`
	GuarAadhaar string `json:"Guar AadarCard - (Your Adhar No):"`
	GuarPincode string `json:"Guar PIN Code - As per Adhar card "`
	GuarState   string `json:"Guar State - As per Adhar card "`
	GuarCity    string `json:"Guar City - As per Adhar card "`
	GuarArea    string `json:"Guar Area - As per Adhar card "`
	GuarAddress string `json:"Guar Address - (Address) :"`

	// Registration certificate
	RegNo        string `json:"Registration No - (Regn. No.) :"`
	OwnerName    string `json:"Veh Owner's Name - (Regd. Owner) :"`
	VehicleType  string `json:"Vehicle Type - (Vehicle Class) :"`
	MfgYear      string `json:"Mfg Year - (Manufacturing Dt.) :"`
	Make         string `json:"Make - (Manufacturar):"`
	MakeClass    string `json:"Make Class - (Model No.)"`
	RegAuthority string `json:"Reg Authority - (DY RTO ) :"`
	EngineNo     string `json:"Engine Number - (Engine No.) :"`
	ChassisNo    string `json:"Chassis Number - (Chassis No.) :"`
	FuelType     string `json:"Fuel Type - (Fuel) :"`
	Color        string `json:"Vehicle Color - (Colour) :"`
	RegDate      string `json:"Date of Reg - (Regn. Date) :"`
	RCExpiry     string `json:"RC Expiry Date - (Regd. Validity) :"`

	// Insurance
	InsCompany     string `json:"Insurance Company - (Insurance Company name )"`
	InsType        string `json:"Insurance Type - (Policy Type) :"`
	InsPolicyNo    string `json:"Insurance No - (Policy Number) : "`
	InsNameXfer    string `json:"Name Transfer - (Name of the Insured) :"`
	InsEndorsement string `json:"Endorsement Date - (Hours on ) :"`
	InsExpiry      string `json:"Insurance Expiry - ( To Midnight Of ke bad ki date ani chahiye) :"`
	IDVValue       string `json:"IDV Value - (IDV Of Value) :"`
	InsPremium     string `json:"Insurance Premium - (Total Policy Premium) :"`

	// Photo keys for the script logic
	PhotoCust      string `json:"photo_cust"`
	PhotoAadhaarF  string `json:"photo_aadhaar_f"`
	PhotoAadhaarB  string `json:"photo_aadhaar_b"`
	PhotoRC        string `json:"photo_rc"`
	PhotoInsurance string `json:"photo_ins"`
	PhotoGuar      string `json:"photo_guar"`
	PhotoAgreement string `json:"photo_agreement"`
	PhotoHisab     string `json:"photo_hisab"`
}

// BuildPayload flattens one lead into the script payload
func BuildPayload(lead *entities.Lead) Payload {
	p := Payload{
		CaseID:       lead.ID,
		CustomerName: lead.CustomerName,
		Status:       string(lead.Status),

		Name:     lead.CustomerName,
		GuarName: lead.GuarName,

		PhotoCust:      lead.CustPhoto,
		PhotoAadhaarF:  lead.CustAadhaarFront,
		PhotoAadhaarB:  lead.CustAadhaarBack,
		PhotoRC:        lead.RCFile,
		PhotoInsurance: lead.InsuranceFile,
		PhotoGuar:      lead.GuarPhoto,
		PhotoAgreement: lead.AgreementPhoto,
		PhotoHisab:     lead.HisabChittiPhoto,
	}

	if a := lead.AadhaarData; a != nil {
		p.DOB = a.DOB
		p.Aadhaar = a.AadhaarNo
		p.Pincode = a.Pincode
		p.State = a.State
		p.City = a.City
		p.Area = a.Area
		p.Address = a.Address
	}

	if rc := lead.RCData; rc != nil {
		p.RegNo = rc.RegNo
		p.OwnerName = rc.OwnerName
		p.VehicleType = rc.VehicleType
		p.MfgYear = MfgYearOnly(rc.MfgYear)
		p.Make = rc.Make
		p.MakeClass = rc.MakeClass
		p.RegAuthority = rc.RegAuthority
		p.EngineNo = rc.EngineNo
		p.ChassisNo = rc.ChassisNo
		p.FuelType = rc.FuelType
		p.Color = rc.Color
		p.RegDate = rc.RegDate
		p.RCExpiry = rc.ExpiryDate
	}

	if ins := lead.InsuranceData; ins != nil {
		p.InsCompany = ins.Company
		p.InsType = ins.Type
		p.InsPolicyNo = ins.PolicyNo
		p.InsNameXfer = ins.NameTransfer
		p.InsEndorsement = ins.EndorsementDate
		p.InsExpiry = ins.ExpiryDate
		p.IDVValue = CleanNumeric(ins.IDVValue)
		p.InsPremium = CleanNumeric(ins.Premium)
	}

	return p
}

// CleanNumeric strips thousands separators and whitespace from a
// numeric-looking field. Only commas and whitespace are removed;
// anything else, currency symbols included, passes through verbatim.
// The sheet depends on this literal behavior.
func CleanNumeric(val string) string {
	val = strings.ReplaceAll(val, ",", "")
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, val)
}

// MfgYearOnly reduces a manufacturing-date field to its first 4-digit
// run. A value with no such run is passed through verbatim.
func MfgYearOnly(val string) string {
	if val == "" {
		return ""
	}
	if year := yearRun.FindString(val); year != "" {
		return year
	}
	return val
}
