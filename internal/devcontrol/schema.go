package devcontrol

// Config is the full tree of boolean toggles driving the studio front-end.
// JSON field names match the keys the front-end persists, so magic links and
// stored trees from existing installs decode unchanged.
type Config struct {
	System    SystemConfig    `json:"system"`
	Landing   LandingConfig   `json:"landing"`
	Services  ServicesConfig  `json:"services"`
	Dashboard DashboardConfig `json:"dashboard"`
	Admin     AdminConfig     `json:"admin"`
}

type SystemConfig struct {
	MaintenanceMode  bool `json:"maintenanceMode"`
	EnableAuthBypass bool `json:"enableAuthBypass"`
	EnablePayments   bool `json:"enablePayments"`
}

type LandingConfig struct {
	ShowHero            bool `json:"showHero"`
	ShowServicesPreview bool `json:"showServicesPreview"`
	ShowHipoPilates     bool `json:"showHipoPilates"`
	ShowWorkMethod      bool `json:"showWorkMethod"`
	ShowInstallations   bool `json:"showInstallations"`
	ShowTestimonials    bool `json:"showTestimonials"`
	ShowFooter          bool `json:"showFooter"`
}

type ServicesConfig struct {
	ShowTabPresencial bool `json:"showTabPresencial"`
	ShowTabOnline     bool `json:"showTabOnline"`
	HighlightNewBadge bool `json:"highlightNewBadge"`
	AllowBooking      bool `json:"allowBooking"`
}

type DashboardConfig struct {
	ShowPromoBanner   bool `json:"showPromoBanner"`
	ShowMetrics       bool `json:"showMetrics"`
	ShowCalendar      bool `json:"showCalendar"`
	AllowCancellation bool `json:"allowCancellation"`
}

type AdminConfig struct {
	AllowDelete      bool `json:"allowDelete"`
	AllowEdit        bool `json:"allowEdit"`
	ShowRevenue      bool `json:"showRevenue"`
	AllowBulkActions bool `json:"allowBulkActions"`

	Layout      AdminLayoutConfig      `json:"layout"`
	Widgets     AdminWidgetsConfig     `json:"widgets"`
	Tools       AdminToolsConfig       `json:"tools"`
	Table       AdminTableConfig       `json:"table"`
	Actions     AdminActionsConfig     `json:"actions"`
	BulkActions AdminBulkActionsConfig `json:"bulkActions"`
	Modals      AdminModalsConfig      `json:"modals"`
}

type AdminLayoutConfig struct {
	ShowHeader            bool `json:"showHeader"`
	ShowHomeLink          bool `json:"showHomeLink"`
	ShowTitle             bool `json:"showTitle"`
	ShowSubtitle          bool `json:"showSubtitle"`
	ShowEditProfileBtn    bool `json:"showEditProfileBtn"`
	ShowLogoutBtn         bool `json:"showLogoutBtn"`
	ShowNotificationToast bool `json:"showNotificationToast"`
	ShowFooter            bool `json:"showFooter"`
}

type AdminWidgetsConfig struct {
	ShowActiveUsersCard     bool `json:"showActiveUsersCard"`
	ShowPendingPaymentsCard bool `json:"showPendingPaymentsCard"`
	ShowRevenueCard         bool `json:"showRevenueCard"`
	ShowAvgRevenueCard      bool `json:"showAvgRevenueCard"`
}

type AdminToolsConfig struct {
	ShowSearch    bool `json:"showSearch"`
	ShowExportBtn bool `json:"showExportBtn"`
	ShowCreateBtn bool `json:"showCreateBtn"`
}

type AdminTableConfig struct {
	ShowStudentCol  bool `json:"showStudentCol"`
	ShowPlanCol     bool `json:"showPlanCol"`
	ShowStatusCol   bool `json:"showStatusCol"`
	ShowPaymentCol  bool `json:"showPaymentCol"`
	ShowRevenueCol  bool `json:"showRevenueCol"`
	ShowActionsCol  bool `json:"showActionsCol"`
	ShowTableFooter bool `json:"showTableFooter"`
}

type AdminActionsConfig struct {
	ShowConfirmPaymentBtn bool `json:"showConfirmPaymentBtn"`
	ShowGiftClassBtn      bool `json:"showGiftClassBtn"`
	ShowEditClassBtn      bool `json:"showEditClassBtn"`
	ShowActivateBtn       bool `json:"showActivateBtn"`
	ShowDeleteBtn         bool `json:"showDeleteBtn"`
}

type AdminBulkActionsConfig struct {
	ShowBulkActionsSection   bool `json:"showBulkActionsSection"`
	ShowPaymentReminderBtn   bool `json:"showPaymentReminderBtn"`
	ShowMonthlyReportBtn     bool `json:"showMonthlyReportBtn"`
	ShowUpdatePlansBtn       bool `json:"showUpdatePlansBtn"`
	ShowQuickStatsSection    bool `json:"showQuickStatsSection"`
	ShowUpcomingTasksSection bool `json:"showUpcomingTasksSection"`
}

type AdminModalsConfig struct {
	ShowEditProfileModal bool `json:"showEditProfileModal"`
	ShowEditClassModal   bool `json:"showEditClassModal"`
}

// Defaults returns the tree every resolution path merges onto. Everything is
// visible and permitted except maintenance mode and the auth bypass.
func Defaults() Config {
	return Config{
		System: SystemConfig{
			MaintenanceMode:  false,
			EnableAuthBypass: false,
			EnablePayments:   true,
		},
		Landing: LandingConfig{
			ShowHero:            true,
			ShowServicesPreview: true,
			ShowHipoPilates:     true,
			ShowWorkMethod:      true,
			ShowInstallations:   true,
			ShowTestimonials:    true,
			ShowFooter:          true,
		},
		Services: ServicesConfig{
			ShowTabPresencial: true,
			ShowTabOnline:     true,
			HighlightNewBadge: true,
			AllowBooking:      true,
		},
		Dashboard: DashboardConfig{
			ShowPromoBanner:   true,
			ShowMetrics:       true,
			ShowCalendar:      true,
			AllowCancellation: true,
		},
		Admin: AdminConfig{
			AllowDelete:      true,
			AllowEdit:        true,
			ShowRevenue:      true,
			AllowBulkActions: true,
			Layout: AdminLayoutConfig{
				ShowHeader:            true,
				ShowHomeLink:          true,
				ShowTitle:             true,
				ShowSubtitle:          true,
				ShowEditProfileBtn:    true,
				ShowLogoutBtn:         true,
				ShowNotificationToast: true,
				ShowFooter:            true,
			},
			Widgets: AdminWidgetsConfig{
				ShowActiveUsersCard:     true,
				ShowPendingPaymentsCard: true,
				ShowRevenueCard:         true,
				ShowAvgRevenueCard:      true,
			},
			Tools: AdminToolsConfig{
				ShowSearch:    true,
				ShowExportBtn: true,
				ShowCreateBtn: true,
			},
			Table: AdminTableConfig{
				ShowStudentCol:  true,
				ShowPlanCol:     true,
				ShowStatusCol:   true,
				ShowPaymentCol:  true,
				ShowRevenueCol:  true,
				ShowActionsCol:  true,
				ShowTableFooter: true,
			},
			Actions: AdminActionsConfig{
				ShowConfirmPaymentBtn: true,
				ShowGiftClassBtn:      true,
				ShowEditClassBtn:      true,
				ShowActivateBtn:       true,
				ShowDeleteBtn:         true,
			},
			BulkActions: AdminBulkActionsConfig{
				ShowBulkActionsSection:   true,
				ShowPaymentReminderBtn:   true,
				ShowMonthlyReportBtn:     true,
				ShowUpdatePlansBtn:       true,
				ShowQuickStatsSection:    true,
				ShowUpcomingTasksSection: true,
			},
			Modals: AdminModalsConfig{
				ShowEditProfileModal: true,
				ShowEditClassModal:   true,
			},
		},
	}
}

// SectionNames lists the top-level sections, in schema order.
func SectionNames() []string {
	return []string{"system", "landing", "services", "dashboard", "admin"}
}

// Section returns the sub-tree for a known section name. The second return
// reports whether the name is part of the schema; known names always yield a
// fully populated value, never a nil.
func (c Config) Section(name string) (any, bool) {
	switch name {
	case "system":
		return c.System, true
	case "landing":
		return c.Landing, true
	case "services":
		return c.Services, true
	case "dashboard":
		return c.Dashboard, true
	case "admin":
		return c.Admin, true
	}
	return nil, false
}
