package payroll

// Departments and Designations are the only choices the editor offers.
// The store does not enforce them; historical records may carry other
// values.
var Departments = []string{"Accounts", "Administration", "Marketing", "HR"}

var Designations = []string{"Manager", "Account Officer", "Purchase Manager"}
