package types

type NavbarData struct {
	IsAuthenticated bool
	UserID          string
	UserEmail       string
	UserName        string
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

// HomeNeedCard is one card on the public listing: the need, its
// participation count and whether the viewer already joined it.
type HomeNeedCard struct {
	Need               *Need
	ParticipationCount int
	ViewerParticipates bool
	ViewerOwns         bool
}

type HomePageData struct {
	BasePageData
	Notice     string
	Error      string
	Needs      []HomeNeedCard
	Cities     []NeedCity
	Categories []NeedCategory
	Filters    NeedFilters
}

type LoginPageData struct {
	BasePageData
	Message string
	Error   string
	Email   string
}

type RegisterPageData struct {
	BasePageData
	Name        string
	Email       string
	Error       string
	FieldErrors map[string]string
}

type ConfirmRegisterPageData struct {
	BasePageData
	Email   string
	Error   string
	Message string
}

type ProposeNeedPageData struct {
	BasePageData
	Input       CreateNeedInput
	Cities      []NeedCity
	Categories  []NeedCategory
	Error       string
	FieldErrors map[string][]string
}

type EspacePageData struct {
	BasePageData
	Notice            string
	Error             string
	CreatedNeeds      []*Need
	ParticipatedNeeds []*ParticipatedNeed
	HasCreated        bool
	HasParticipated   bool
}
