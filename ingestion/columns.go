package ingestion

// Column names read from upload rows. Other columns are ignored.
const (
	ColAgent           = "agent"
	ColCompanyName     = "company_name"
	ColCategoryName    = "category_name"
	ColUserName        = "userName"
	ColFirstName       = "firstname"
	ColDOB             = "dob"
	ColAddress         = "address"
	ColPhone           = "phone"
	ColState           = "state"
	ColZip             = "zip"
	ColEmail           = "email"
	ColGender          = "gender"
	ColUserType        = "userType"
	ColAccountName     = "account_name"
	ColAccountType     = "account_type"
	ColPolicyNumber    = "policy_number"
	ColPolicyStartDate = "policy_start_date"
	ColPolicyEndDate   = "policy_end_date"
)
