package devcontrol

// Patch is a partial Config: nil leaves keep the base value. Nested admin
// groups merge one level deeper, so flipping a single nested boolean leaves
// its siblings alone. Because the shape is fixed at compile time, applying a
// patch can never drop or invent a key.
type Patch struct {
	System    *SystemPatch    `json:"system,omitempty"`
	Landing   *LandingPatch   `json:"landing,omitempty"`
	Services  *ServicesPatch  `json:"services,omitempty"`
	Dashboard *DashboardPatch `json:"dashboard,omitempty"`
	Admin     *AdminPatch     `json:"admin,omitempty"`
}

type SystemPatch struct {
	MaintenanceMode  *bool `json:"maintenanceMode,omitempty"`
	EnableAuthBypass *bool `json:"enableAuthBypass,omitempty"`
	EnablePayments   *bool `json:"enablePayments,omitempty"`
}

type LandingPatch struct {
	ShowHero            *bool `json:"showHero,omitempty"`
	ShowServicesPreview *bool `json:"showServicesPreview,omitempty"`
	ShowHipoPilates     *bool `json:"showHipoPilates,omitempty"`
	ShowWorkMethod      *bool `json:"showWorkMethod,omitempty"`
	ShowInstallations   *bool `json:"showInstallations,omitempty"`
	ShowTestimonials    *bool `json:"showTestimonials,omitempty"`
	ShowFooter          *bool `json:"showFooter,omitempty"`
}

type ServicesPatch struct {
	ShowTabPresencial *bool `json:"showTabPresencial,omitempty"`
	ShowTabOnline     *bool `json:"showTabOnline,omitempty"`
	HighlightNewBadge *bool `json:"highlightNewBadge,omitempty"`
	AllowBooking      *bool `json:"allowBooking,omitempty"`
}

type DashboardPatch struct {
	ShowPromoBanner   *bool `json:"showPromoBanner,omitempty"`
	ShowMetrics       *bool `json:"showMetrics,omitempty"`
	ShowCalendar      *bool `json:"showCalendar,omitempty"`
	AllowCancellation *bool `json:"allowCancellation,omitempty"`
}

type AdminPatch struct {
	AllowDelete      *bool `json:"allowDelete,omitempty"`
	AllowEdit        *bool `json:"allowEdit,omitempty"`
	ShowRevenue      *bool `json:"showRevenue,omitempty"`
	AllowBulkActions *bool `json:"allowBulkActions,omitempty"`

	Layout      *AdminLayoutPatch      `json:"layout,omitempty"`
	Widgets     *AdminWidgetsPatch     `json:"widgets,omitempty"`
	Tools       *AdminToolsPatch       `json:"tools,omitempty"`
	Table       *AdminTablePatch       `json:"table,omitempty"`
	Actions     *AdminActionsPatch     `json:"actions,omitempty"`
	BulkActions *AdminBulkActionsPatch `json:"bulkActions,omitempty"`
	Modals      *AdminModalsPatch      `json:"modals,omitempty"`
}

type AdminLayoutPatch struct {
	ShowHeader            *bool `json:"showHeader,omitempty"`
	ShowHomeLink          *bool `json:"showHomeLink,omitempty"`
	ShowTitle             *bool `json:"showTitle,omitempty"`
	ShowSubtitle          *bool `json:"showSubtitle,omitempty"`
	ShowEditProfileBtn    *bool `json:"showEditProfileBtn,omitempty"`
	ShowLogoutBtn         *bool `json:"showLogoutBtn,omitempty"`
	ShowNotificationToast *bool `json:"showNotificationToast,omitempty"`
	ShowFooter            *bool `json:"showFooter,omitempty"`
}

type AdminWidgetsPatch struct {
	ShowActiveUsersCard     *bool `json:"showActiveUsersCard,omitempty"`
	ShowPendingPaymentsCard *bool `json:"showPendingPaymentsCard,omitempty"`
	ShowRevenueCard         *bool `json:"showRevenueCard,omitempty"`
	ShowAvgRevenueCard      *bool `json:"showAvgRevenueCard,omitempty"`
}

type AdminToolsPatch struct {
	ShowSearch    *bool `json:"showSearch,omitempty"`
	ShowExportBtn *bool `json:"showExportBtn,omitempty"`
	ShowCreateBtn *bool `json:"showCreateBtn,omitempty"`
}

type AdminTablePatch struct {
	ShowStudentCol  *bool `json:"showStudentCol,omitempty"`
	ShowPlanCol     *bool `json:"showPlanCol,omitempty"`
	ShowStatusCol   *bool `json:"showStatusCol,omitempty"`
	ShowPaymentCol  *bool `json:"showPaymentCol,omitempty"`
	ShowRevenueCol  *bool `json:"showRevenueCol,omitempty"`
	ShowActionsCol  *bool `json:"showActionsCol,omitempty"`
	ShowTableFooter *bool `json:"showTableFooter,omitempty"`
}

type AdminActionsPatch struct {
	ShowConfirmPaymentBtn *bool `json:"showConfirmPaymentBtn,omitempty"`
	ShowGiftClassBtn      *bool `json:"showGiftClassBtn,omitempty"`
	ShowEditClassBtn      *bool `json:"showEditClassBtn,omitempty"`
	ShowActivateBtn       *bool `json:"showActivateBtn,omitempty"`
	ShowDeleteBtn         *bool `json:"showDeleteBtn,omitempty"`
}

type AdminBulkActionsPatch struct {
	ShowBulkActionsSection   *bool `json:"showBulkActionsSection,omitempty"`
	ShowPaymentReminderBtn   *bool `json:"showPaymentReminderBtn,omitempty"`
	ShowMonthlyReportBtn     *bool `json:"showMonthlyReportBtn,omitempty"`
	ShowUpdatePlansBtn       *bool `json:"showUpdatePlansBtn,omitempty"`
	ShowQuickStatsSection    *bool `json:"showQuickStatsSection,omitempty"`
	ShowUpcomingTasksSection *bool `json:"showUpcomingTasksSection,omitempty"`
}

type AdminModalsPatch struct {
	ShowEditProfileModal *bool `json:"showEditProfileModal,omitempty"`
	ShowEditClassModal   *bool `json:"showEditClassModal,omitempty"`
}

// Apply returns a copy of c with every non-nil patch leaf written over it.
func (c Config) Apply(p Patch) Config {
	if p.System != nil {
		set(&c.System.MaintenanceMode, p.System.MaintenanceMode)
		set(&c.System.EnableAuthBypass, p.System.EnableAuthBypass)
		set(&c.System.EnablePayments, p.System.EnablePayments)
	}
	if p.Landing != nil {
		set(&c.Landing.ShowHero, p.Landing.ShowHero)
		set(&c.Landing.ShowServicesPreview, p.Landing.ShowServicesPreview)
		set(&c.Landing.ShowHipoPilates, p.Landing.ShowHipoPilates)
		set(&c.Landing.ShowWorkMethod, p.Landing.ShowWorkMethod)
		set(&c.Landing.ShowInstallations, p.Landing.ShowInstallations)
		set(&c.Landing.ShowTestimonials, p.Landing.ShowTestimonials)
		set(&c.Landing.ShowFooter, p.Landing.ShowFooter)
	}
	if p.Services != nil {
		set(&c.Services.ShowTabPresencial, p.Services.ShowTabPresencial)
		set(&c.Services.ShowTabOnline, p.Services.ShowTabOnline)
		set(&c.Services.HighlightNewBadge, p.Services.HighlightNewBadge)
		set(&c.Services.AllowBooking, p.Services.AllowBooking)
	}
	if p.Dashboard != nil {
		set(&c.Dashboard.ShowPromoBanner, p.Dashboard.ShowPromoBanner)
		set(&c.Dashboard.ShowMetrics, p.Dashboard.ShowMetrics)
		set(&c.Dashboard.ShowCalendar, p.Dashboard.ShowCalendar)
		set(&c.Dashboard.AllowCancellation, p.Dashboard.AllowCancellation)
	}
	if p.Admin != nil {
		set(&c.Admin.AllowDelete, p.Admin.AllowDelete)
		set(&c.Admin.AllowEdit, p.Admin.AllowEdit)
		set(&c.Admin.ShowRevenue, p.Admin.ShowRevenue)
		set(&c.Admin.AllowBulkActions, p.Admin.AllowBulkActions)

		if l := p.Admin.Layout; l != nil {
			set(&c.Admin.Layout.ShowHeader, l.ShowHeader)
			set(&c.Admin.Layout.ShowHomeLink, l.ShowHomeLink)
			set(&c.Admin.Layout.ShowTitle, l.ShowTitle)
			set(&c.Admin.Layout.ShowSubtitle, l.ShowSubtitle)
			set(&c.Admin.Layout.ShowEditProfileBtn, l.ShowEditProfileBtn)
			set(&c.Admin.Layout.ShowLogoutBtn, l.ShowLogoutBtn)
			set(&c.Admin.Layout.ShowNotificationToast, l.ShowNotificationToast)
			set(&c.Admin.Layout.ShowFooter, l.ShowFooter)
		}
		if w := p.Admin.Widgets; w != nil {
			set(&c.Admin.Widgets.ShowActiveUsersCard, w.ShowActiveUsersCard)
			set(&c.Admin.Widgets.ShowPendingPaymentsCard, w.ShowPendingPaymentsCard)
			set(&c.Admin.Widgets.ShowRevenueCard, w.ShowRevenueCard)
			set(&c.Admin.Widgets.ShowAvgRevenueCard, w.ShowAvgRevenueCard)
		}
		if t := p.Admin.Tools; t != nil {
			set(&c.Admin.Tools.ShowSearch, t.ShowSearch)
			set(&c.Admin.Tools.ShowExportBtn, t.ShowExportBtn)
			set(&c.Admin.Tools.ShowCreateBtn, t.ShowCreateBtn)
		}
		if t := p.Admin.Table; t != nil {
			set(&c.Admin.Table.ShowStudentCol, t.ShowStudentCol)
			set(&c.Admin.Table.ShowPlanCol, t.ShowPlanCol)
			set(&c.Admin.Table.ShowStatusCol, t.ShowStatusCol)
			set(&c.Admin.Table.ShowPaymentCol, t.ShowPaymentCol)
			set(&c.Admin.Table.ShowRevenueCol, t.ShowRevenueCol)
			set(&c.Admin.Table.ShowActionsCol, t.ShowActionsCol)
			set(&c.Admin.Table.ShowTableFooter, t.ShowTableFooter)
		}
		if a := p.Admin.Actions; a != nil {
			set(&c.Admin.Actions.ShowConfirmPaymentBtn, a.ShowConfirmPaymentBtn)
			set(&c.Admin.Actions.ShowGiftClassBtn, a.ShowGiftClassBtn)
			set(&c.Admin.Actions.ShowEditClassBtn, a.ShowEditClassBtn)
			set(&c.Admin.Actions.ShowActivateBtn, a.ShowActivateBtn)
			set(&c.Admin.Actions.ShowDeleteBtn, a.ShowDeleteBtn)
		}
		if b := p.Admin.BulkActions; b != nil {
			set(&c.Admin.BulkActions.ShowBulkActionsSection, b.ShowBulkActionsSection)
			set(&c.Admin.BulkActions.ShowPaymentReminderBtn, b.ShowPaymentReminderBtn)
			set(&c.Admin.BulkActions.ShowMonthlyReportBtn, b.ShowMonthlyReportBtn)
			set(&c.Admin.BulkActions.ShowUpdatePlansBtn, b.ShowUpdatePlansBtn)
			set(&c.Admin.BulkActions.ShowQuickStatsSection, b.ShowQuickStatsSection)
			set(&c.Admin.BulkActions.ShowUpcomingTasksSection, b.ShowUpcomingTasksSection)
		}
		if m := p.Admin.Modals; m != nil {
			set(&c.Admin.Modals.ShowEditProfileModal, m.ShowEditProfileModal)
			set(&c.Admin.Modals.ShowEditClassModal, m.ShowEditClassModal)
		}
	}
	return c
}

func set(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
