package models

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&TenantModel{},
		&UserModel{},
		&JobDescriptionModel{},
		&CandidateModel{},
		&TenantSubscriptionModel{},
		&TenantUsageModel{},
		&PendingSignupModel{},
		&PaymentHistoryModel{},
	}
}
