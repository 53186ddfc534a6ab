package devcontrol

// Named presets for short links. Each is a full override resolved with
// Defaults().Apply; unknown names are simply absent (the resolver falls
// through to the next source).

func PresetNames() []string {
	return []string{"demo", "minimal", "maintenance"}
}

func Preset(name string) (Patch, bool) {
	switch name {
	case "demo":
		return presetDemo(), true
	case "minimal":
		return presetMinimal(), true
	case "maintenance":
		return presetMaintenance(), true
	}
	return Patch{}, false
}

func flag(v bool) *bool { return &v }

// presetDemo is the sales scenario: everything visible and enabled.
func presetDemo() Patch {
	return Patch{
		System: &SystemPatch{
			MaintenanceMode:  flag(false),
			EnableAuthBypass: flag(false),
			EnablePayments:   flag(true),
		},
		Landing: &LandingPatch{
			ShowHero:            flag(true),
			ShowServicesPreview: flag(true),
			ShowHipoPilates:     flag(true),
			ShowWorkMethod:      flag(true),
			ShowInstallations:   flag(true),
			ShowTestimonials:    flag(true),
			ShowFooter:          flag(true),
		},
		Services: &ServicesPatch{
			ShowTabPresencial: flag(true),
			ShowTabOnline:     flag(true),
			HighlightNewBadge: flag(true),
			AllowBooking:      flag(true),
		},
		Dashboard: &DashboardPatch{
			ShowPromoBanner:   flag(true),
			ShowMetrics:       flag(true),
			ShowCalendar:      flag(true),
			AllowCancellation: flag(true),
		},
		Admin: &AdminPatch{
			AllowDelete:      flag(true),
			AllowEdit:        flag(true),
			ShowRevenue:      flag(true),
			AllowBulkActions: flag(true),
			Layout: &AdminLayoutPatch{
				ShowHeader:            flag(true),
				ShowHomeLink:          flag(true),
				ShowTitle:             flag(true),
				ShowSubtitle:          flag(true),
				ShowEditProfileBtn:    flag(true),
				ShowLogoutBtn:         flag(true),
				ShowNotificationToast: flag(true),
				ShowFooter:            flag(true),
			},
			Widgets: &AdminWidgetsPatch{
				ShowActiveUsersCard:     flag(true),
				ShowPendingPaymentsCard: flag(true),
				ShowRevenueCard:         flag(true),
				ShowAvgRevenueCard:      flag(true),
			},
			Tools: &AdminToolsPatch{
				ShowSearch:    flag(true),
				ShowExportBtn: flag(true),
				ShowCreateBtn: flag(true),
			},
			Table: &AdminTablePatch{
				ShowStudentCol:  flag(true),
				ShowPlanCol:     flag(true),
				ShowStatusCol:   flag(true),
				ShowPaymentCol:  flag(true),
				ShowRevenueCol:  flag(true),
				ShowActionsCol:  flag(true),
				ShowTableFooter: flag(true),
			},
			Actions: &AdminActionsPatch{
				ShowConfirmPaymentBtn: flag(true),
				ShowGiftClassBtn:      flag(true),
				ShowEditClassBtn:      flag(true),
				ShowActivateBtn:       flag(true),
				ShowDeleteBtn:         flag(true),
			},
			BulkActions: &AdminBulkActionsPatch{
				ShowBulkActionsSection:   flag(true),
				ShowPaymentReminderBtn:   flag(true),
				ShowMonthlyReportBtn:     flag(true),
				ShowUpdatePlansBtn:       flag(true),
				ShowQuickStatsSection:    flag(true),
				ShowUpcomingTasksSection: flag(true),
			},
			Modals: &AdminModalsPatch{
				ShowEditProfileModal: flag(true),
				ShowEditClassModal:   flag(true),
			},
		},
	}
}

// presetMinimal strips the optional surfaces to show how sections disappear.
func presetMinimal() Patch {
	return Patch{
		System: &SystemPatch{
			MaintenanceMode:  flag(false),
			EnableAuthBypass: flag(false),
			EnablePayments:   flag(true),
		},
		Landing: &LandingPatch{
			ShowHero:            flag(true),
			ShowServicesPreview: flag(false),
			ShowHipoPilates:     flag(false),
			ShowWorkMethod:      flag(true),
			ShowInstallations:   flag(false),
			ShowTestimonials:    flag(false),
			ShowFooter:          flag(true),
		},
		Services: &ServicesPatch{
			ShowTabPresencial: flag(false),
			ShowTabOnline:     flag(true),
			HighlightNewBadge: flag(false),
			AllowBooking:      flag(false),
		},
		Dashboard: &DashboardPatch{
			ShowPromoBanner:   flag(false),
			ShowMetrics:       flag(false),
			ShowCalendar:      flag(false),
			AllowCancellation: flag(false),
		},
		Admin: &AdminPatch{
			AllowDelete:      flag(false),
			AllowEdit:        flag(false),
			ShowRevenue:      flag(false),
			AllowBulkActions: flag(false),
			Layout: &AdminLayoutPatch{
				ShowHeader:            flag(true),
				ShowHomeLink:          flag(true),
				ShowTitle:             flag(true),
				ShowSubtitle:          flag(true),
				ShowEditProfileBtn:    flag(false),
				ShowLogoutBtn:         flag(true),
				ShowNotificationToast: flag(false),
				ShowFooter:            flag(true),
			},
			Widgets: &AdminWidgetsPatch{
				ShowActiveUsersCard:     flag(false),
				ShowPendingPaymentsCard: flag(false),
				ShowRevenueCard:         flag(false),
				ShowAvgRevenueCard:      flag(false),
			},
			Tools: &AdminToolsPatch{
				ShowSearch:    flag(false),
				ShowExportBtn: flag(false),
				ShowCreateBtn: flag(false),
			},
			Table: &AdminTablePatch{
				ShowStudentCol:  flag(true),
				ShowPlanCol:     flag(true),
				ShowStatusCol:   flag(false),
				ShowPaymentCol:  flag(false),
				ShowRevenueCol:  flag(false),
				ShowActionsCol:  flag(false),
				ShowTableFooter: flag(false),
			},
			Actions: &AdminActionsPatch{
				ShowConfirmPaymentBtn: flag(false),
				ShowGiftClassBtn:      flag(false),
				ShowEditClassBtn:      flag(false),
				ShowActivateBtn:       flag(false),
				ShowDeleteBtn:         flag(false),
			},
			BulkActions: &AdminBulkActionsPatch{
				ShowBulkActionsSection:   flag(false),
				ShowPaymentReminderBtn:   flag(false),
				ShowMonthlyReportBtn:     flag(false),
				ShowUpdatePlansBtn:       flag(false),
				ShowQuickStatsSection:    flag(false),
				ShowUpcomingTasksSection: flag(false),
			},
			Modals: &AdminModalsPatch{
				ShowEditProfileModal: flag(false),
				ShowEditClassModal:   flag(false),
			},
		},
	}
}

// presetMaintenance turns the whole site off behind the maintenance screen.
func presetMaintenance() Patch {
	return Patch{
		System: &SystemPatch{
			MaintenanceMode:  flag(true),
			EnableAuthBypass: flag(false),
			EnablePayments:   flag(false),
		},
		Landing: &LandingPatch{
			ShowHero:            flag(false),
			ShowServicesPreview: flag(false),
			ShowHipoPilates:     flag(false),
			ShowWorkMethod:      flag(false),
			ShowInstallations:   flag(false),
			ShowTestimonials:    flag(false),
			ShowFooter:          flag(false),
		},
		Services: &ServicesPatch{
			ShowTabPresencial: flag(false),
			ShowTabOnline:     flag(false),
			HighlightNewBadge: flag(false),
			AllowBooking:      flag(false),
		},
		Dashboard: &DashboardPatch{
			ShowPromoBanner:   flag(false),
			ShowMetrics:       flag(false),
			ShowCalendar:      flag(false),
			AllowCancellation: flag(false),
		},
		Admin: &AdminPatch{
			AllowDelete:      flag(false),
			AllowEdit:        flag(false),
			ShowRevenue:      flag(false),
			AllowBulkActions: flag(false),
			Layout: &AdminLayoutPatch{
				ShowHeader:            flag(false),
				ShowHomeLink:          flag(false),
				ShowTitle:             flag(false),
				ShowSubtitle:          flag(false),
				ShowEditProfileBtn:    flag(false),
				ShowLogoutBtn:         flag(false),
				ShowNotificationToast: flag(false),
				ShowFooter:            flag(false),
			},
			Widgets: &AdminWidgetsPatch{
				ShowActiveUsersCard:     flag(false),
				ShowPendingPaymentsCard: flag(false),
				ShowRevenueCard:         flag(false),
				ShowAvgRevenueCard:      flag(false),
			},
			Tools: &AdminToolsPatch{
				ShowSearch:    flag(false),
				ShowExportBtn: flag(false),
				ShowCreateBtn: flag(false),
			},
			Table: &AdminTablePatch{
				ShowStudentCol:  flag(false),
				ShowPlanCol:     flag(false),
				ShowStatusCol:   flag(false),
				ShowPaymentCol:  flag(false),
				ShowRevenueCol:  flag(false),
				ShowActionsCol:  flag(false),
				ShowTableFooter: flag(false),
			},
			Actions: &AdminActionsPatch{
				ShowConfirmPaymentBtn: flag(false),
				ShowGiftClassBtn:      flag(false),
				ShowEditClassBtn:      flag(false),
				ShowActivateBtn:       flag(false),
				ShowDeleteBtn:         flag(false),
			},
			BulkActions: &AdminBulkActionsPatch{
				ShowBulkActionsSection:   flag(false),
				ShowPaymentReminderBtn:   flag(false),
				ShowMonthlyReportBtn:     flag(false),
				ShowUpdatePlansBtn:       flag(false),
				ShowQuickStatsSection:    flag(false),
				ShowUpcomingTasksSection: flag(false),
			},
			Modals: &AdminModalsPatch{
				ShowEditProfileModal: flag(false),
				ShowEditClassModal:   flag(false),
			},
		},
	}
}
