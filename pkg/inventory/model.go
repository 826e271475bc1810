package inventory

// Unknown is the sentinel stored when a serial number or MAC is missing.
const Unknown = "UNKNOWN"

// Record describes one normalized inventory row.
type Record struct {
	SequenceNo   string
	Team         string
	DeviceModel  string
	SerialNumber string
	MACAddress   string
	Condition    string
	AssignedTo   string
	Owner        string
}

// Columns lists the cleaned-file header in schema order.
var Columns = []string{"Sl.no", "Team", "Device model", "S/N", "MAC ID", "Condition", "Assigned to", "Owner"}

func (r Record) fields() []string {
	return []string{r.SequenceNo, r.Team, r.DeviceModel, r.SerialNumber, r.MACAddress, r.Condition, r.AssignedTo, r.Owner}
}

// Empty reports whether every field of the record is empty.
func (r Record) Empty() bool {
	for _, f := range r.fields() {
		if f != "" {
			return false
		}
	}
	return true
}
