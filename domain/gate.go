package domain

// MFAStatus is the tri-state verification flag carried by a session.
//
// The three values are not interchangeable: only MFANotVerified (a recorded
// failed/pending challenge) triggers the MFA redirect, while only MFAVerified
// satisfies the verified-or-trusted precondition for the onboarding check.
// MFAUnknown passes the first check and fails the second. Collapsing this to
// a boolean changes gate behavior.
type MFAStatus int

const (
	// MFAUnknown means the session carries no MFA verdict at all, e.g. the
	// user has MFA disabled.
	MFAUnknown MFAStatus = iota
	// MFAVerified means the session passed an MFA challenge.
	MFAVerified
	// MFANotVerified means a challenge is pending or failed for this session.
	MFANotVerified
)

func (s MFAStatus) String() string {
	switch s {
	case MFAVerified:
		return "verified"
	case MFANotVerified:
		return "not_verified"
	default:
		return "unknown"
	}
}

// GateOutcome is the decision produced for a request into the dashboard area.
type GateOutcome int

const (
	// GateProceed lets the request through. A nil session also proceeds:
	// anonymous access is the downstream page's problem, not the gate's.
	GateProceed GateOutcome = iota
	// GateRedirectMFA sends the user to the MFA challenge.
	GateRedirectMFA
	// GateRedirectOnboarding sends the user to the onboarding flow.
	GateRedirectOnboarding
)

func (o GateOutcome) String() string {
	switch o {
	case GateRedirectMFA:
		return "redirect_mfa"
	case GateRedirectOnboarding:
		return "redirect_onboarding"
	default:
		return "proceed"
	}
}

// DecideGateOutcome is the single decision function behind both dashboard
// gate layers.
//
// Branch order matters: an unverified session on an untrusted device goes to
// the MFA challenge regardless of onboarding state; a verified-or-trusted
// session with an incomplete profile goes to onboarding unless it is already
// on the onboarding path.
func DecideGateOutcome(session *Session, trusted bool, onboardingComplete bool, currentPath string, onboardingPath string) GateOutcome {
	if session == nil {
		return GateProceed
	}
	if session.MFA == MFANotVerified && !trusted {
		return GateRedirectMFA
	}
	if (session.MFA == MFAVerified || trusted) && !onboardingComplete && currentPath != onboardingPath {
		return GateRedirectOnboarding
	}
	return GateProceed
}
