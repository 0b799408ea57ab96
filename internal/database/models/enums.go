package models

// MembershipRole represents the role of a user within an organization
type MembershipRole string

const (
	MembershipRoleAdmin    MembershipRole = "admin"
	MembershipRoleStandard MembershipRole = "standard"
)

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleAdmin, MembershipRoleStandard:
		return true
	}
	return false
}

// ClusterKind distinguishes platform-managed clusters from customer endpoints
type ClusterKind string

const (
	ClusterKindManaged  ClusterKind = "managed"
	ClusterKindCustomer ClusterKind = "customer"
)

// IsValid checks if the ClusterKind is valid
func (k ClusterKind) IsValid() bool {
	switch k {
	case ClusterKindManaged, ClusterKindCustomer:
		return true
	}
	return false
}

// ClusterOwner identifies who operates a registered cluster
type ClusterOwner string

const (
	ClusterOwnerPlatform ClusterOwner = "platform"
	ClusterOwnerCustomer ClusterOwner = "customer"
)

// IsValid checks if the ClusterOwner is valid
func (o ClusterOwner) IsValid() bool {
	switch o {
	case ClusterOwnerPlatform, ClusterOwnerCustomer:
		return true
	}
	return false
}

// ClusterProvider represents the execution backend behind a cluster endpoint
type ClusterProvider string

const (
	ClusterProviderKubernetes ClusterProvider = "kubernetes"
	ClusterProviderSlurm      ClusterProvider = "slurm"
	ClusterProviderRay        ClusterProvider = "ray"
	ClusterProviderCustom     ClusterProvider = "custom"
)

// IsValid checks if the ClusterProvider is valid
func (p ClusterProvider) IsValid() bool {
	switch p {
	case ClusterProviderKubernetes, ClusterProviderSlurm, ClusterProviderRay, ClusterProviderCustom:
		return true
	}
	return false
}

// JobStatus represents the lifecycle state of a training job
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// IsValid checks if the JobStatus is valid
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusQueued, JobStatusRunning, JobStatusSucceeded, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are accepted from s
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusSucceeded, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
// queued -> running; running -> succeeded|failed; any non-terminal -> cancelled.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if !next.IsValid() || s.IsTerminal() {
		return false
	}
	if next == JobStatusCancelled {
		return true
	}
	switch s {
	case JobStatusQueued:
		return next == JobStatusRunning
	case JobStatusRunning:
		return next == JobStatusSucceeded || next == JobStatusFailed
	}
	return false
}

// BillingSource records how a job's cost was covered
type BillingSource string

const (
	BillingSourcePromoCredit      BillingSource = "promo-credit"
	BillingSourceCustomerFreeTier BillingSource = "customer-free-tier"
	BillingSourceManagedFreeTier  BillingSource = "managed-free-tier"
	BillingSourceCard             BillingSource = "card"
)

// IsValid checks if the BillingSource is valid
func (s BillingSource) IsValid() bool {
	switch s {
	case BillingSourcePromoCredit, BillingSourceCustomerFreeTier, BillingSourceManagedFreeTier, BillingSourceCard:
		return true
	}
	return false
}

// IntentState tracks a billing intent through the commit workflow
type IntentState string

const (
	IntentStatePending     IntentState = "pending"
	IntentStateCommitted   IntentState = "committed"
	IntentStateCompensated IntentState = "compensated"
)
