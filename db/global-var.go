package db

const (
	ConstLayoutDateTime = `2006-01-02 15:04`
	ConstLayoutDate     = `2006-01-02`
	ConstLayoutTime     = `15:04`
)

var ConstRoles = struct {
	Admin    int
	Operator int
	Guide    int
	Client   int
	API      int
}{
	Admin:    1,
	Operator: 2,
	Guide:    3,
	Client:   4,
	API:      5,
}

var ConstRosterStatuses = struct {
	Active   string
	Inactive string
}{
	Active:   "Active",
	Inactive: "Inactive",
}

// Every insert forces Success; Pending and Failed exist only for
// records written through the overwrite update.
var ConstPaymentStatuses = struct {
	Pending string
	Success string
	Failed  string
}{
	Pending: "pending",
	Success: "success",
	Failed:  "failed",
}

var ConstTourTypes = struct {
	Standard string
	Luxury   string
	Custom   string
}{
	Standard: "Standard",
	Luxury:   "Luxury",
	Custom:   "Custom",
}

var ConstTourRequestStatuses = struct {
	Pending   string
	Confirmed string
	Cancelled string
}{
	Pending:   "Pending",
	Confirmed: "Confirmed",
	Cancelled: "Cancelled",
}

// ConstDefaultPaymentUserID backfills payments that arrive without a
// user association.
const ConstDefaultPaymentUserID = 12345
