package draft

// File is a local file attached to a draft before upload
type File struct {
	Name    string
	Content []byte
}

// Rule is the in-progress new-rule form state. It exists only while the
// form is open and is thrown away on cancel or after a successful create.
//
// The id and display-name of the selected user always change together, so
// the denormalized pair stored on the created rule can never mismatch.
// Same for the device selection.
type Rule struct {
	userID      string
	userName    string
	deviceID    string
	deviceName  string
	emailStatus string
	file        *File
}

// New creates an empty draft
func New() *Rule {
	return &Rule{}
}

// SetUser selects a user by id together with its display name
func (r *Rule) SetUser(id, fullName string) {
	r.userID = id
	r.userName = fullName
}

// SetDevice selects a device by id together with its title
func (r *Rule) SetDevice(id, title string) {
	r.deviceID = id
	r.deviceName = title
}

// SetEmailStatus sets the email status selection
func (r *Rule) SetEmailStatus(status string) {
	r.emailStatus = status
}

// AttachFile attaches a single file, replacing any previous attachment
func (r *Rule) AttachFile(name string, content []byte) {
	r.file = &File{Name: name, Content: content}
}

// ClearFile removes the attached file
func (r *Rule) ClearFile() {
	r.file = nil
}

func (r *Rule) UserID() string      { return r.userID }
func (r *Rule) UserName() string    { return r.userName }
func (r *Rule) DeviceID() string    { return r.deviceID }
func (r *Rule) DeviceName() string  { return r.deviceName }
func (r *Rule) EmailStatus() string { return r.emailStatus }
func (r *Rule) AttachedFile() *File { return r.file }
