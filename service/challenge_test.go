package service

import (
	"testing"

	"github.com/paypal/payments-sdk-go/fixtures"
	"github.com/paypal/payments-sdk-go/models"
	. "github.com/smartystreets/goconvey/convey"
)

func testPolicy() ChallengePolicy {
	return ChallengePolicy{TrustedAuthDomains: []string{"paypal.com", "sandbox.paypal.com"}}
}

func TestUnitChallengePolicyForOrder(t *testing.T) {
	policy := testPolicy()

	Convey("Approved order needs no challenge", t, func() {
		decision := policy.ForOrder(fixtures.GetConfirmPaymentSourceApproved("testOrderId"))

		So(decision.Kind, ShouldEqual, ChallengeNotRequired)
		So(decision.URL, ShouldBeNil)
	})

	Convey("Unrecognised status passes through without a challenge", t, func() {
		outcome := &models.ConfirmPaymentSourceResponse{ID: "testOrderId", Status: "CREATED"}

		decision := policy.ForOrder(outcome)

		So(decision.Kind, ShouldEqual, ChallengeNotRequired)
	})

	Convey("Payer action with a trusted 3ds link requires a challenge", t, func() {
		outcome := fixtures.GetConfirmPaymentSourceChallenge("testOrderId", fixtures.ChallengeHref)

		decision := policy.ForOrder(outcome)

		So(decision.Kind, ShouldEqual, ChallengeRequired)
		So(decision.URL.String(), ShouldEqual, fixtures.ChallengeHref)
	})

	Convey("Payer action without a payer-action link is invalid", t, func() {
		outcome := &models.ConfirmPaymentSourceResponse{
			ID:     "testOrderId",
			Status: models.StatusPayerActionRequired,
			Links:  []models.Link{{Rel: "self", Href: "https://api.sandbox.paypal.com/v2/checkout/orders/testOrderId"}},
		}

		decision := policy.ForOrder(outcome)

		So(decision.Kind, ShouldEqual, ChallengeInvalid)
		So(decision.Reason, ShouldEqual, ReasonNoChallengeLink)
	})

	Convey("Empty challenge href is invalid", t, func() {
		outcome := fixtures.GetConfirmPaymentSourceChallenge("testOrderId", "")

		decision := policy.ForOrder(outcome)

		So(decision.Kind, ShouldEqual, ChallengeInvalid)
		So(decision.Reason, ShouldEqual, ReasonNoChallengeLink)
	})

	Convey("Challenge link missing the 3ds flow marker is invalid", t, func() {
		outcome := fixtures.GetConfirmPaymentSourceChallenge("testOrderId",
			"https://www.sandbox.paypal.com/webapps/helios?action=authenticate&token=X")

		decision := policy.ForOrder(outcome)

		So(decision.Kind, ShouldEqual, ChallengeInvalid)
		So(decision.Reason, ShouldEqual, ReasonUntrustedURL)
	})

	Convey("Challenge link on a foreign host is invalid", t, func() {
		outcome := fixtures.GetConfirmPaymentSourceChallenge("testOrderId",
			"https://evil.example.com/helios?action=authenticate&token=X&flow=3ds")

		decision := policy.ForOrder(outcome)

		So(decision.Kind, ShouldEqual, ChallengeInvalid)
		So(decision.Reason, ShouldEqual, ReasonUntrustedURL)
	})

	Convey("Host containing a trusted domain as a substring is still invalid", t, func() {
		outcome := fixtures.GetConfirmPaymentSourceChallenge("testOrderId",
			"https://paypal.com.evil.example.com/helios?flow=3ds")

		decision := policy.ForOrder(outcome)

		So(decision.Kind, ShouldEqual, ChallengeInvalid)
		So(decision.Reason, ShouldEqual, ReasonUntrustedURL)
	})

	Convey("Non-https challenge link is invalid", t, func() {
		outcome := fixtures.GetConfirmPaymentSourceChallenge("testOrderId",
			"http://www.sandbox.paypal.com/webapps/helios?flow=3ds")

		decision := policy.ForOrder(outcome)

		So(decision.Kind, ShouldEqual, ChallengeInvalid)
	})
}

func TestUnitChallengePolicyForVault(t *testing.T) {
	policy := testPolicy()

	Convey("Approved setup token needs no challenge", t, func() {
		decision := policy.ForVault(fixtures.GetSetupTokenApproved("testToken1"))

		So(decision.Kind, ShouldEqual, ChallengeNotRequired)
	})

	Convey("Payer action with a trusted approve link requires a challenge", t, func() {
		details := fixtures.GetSetupTokenChallenge("testToken1", fixtures.VaultChallengeHref)

		decision := policy.ForVault(details)

		So(decision.Kind, ShouldEqual, ChallengeRequired)
		So(decision.URL.String(), ShouldEqual, fixtures.VaultChallengeHref)
	})

	Convey("Vault challenge does not need the 3ds flow marker", t, func() {
		details := fixtures.GetSetupTokenChallenge("testToken1",
			"https://www.sandbox.paypal.com/agreements/approve?token=X")

		decision := policy.ForVault(details)

		So(decision.Kind, ShouldEqual, ChallengeRequired)
	})

	Convey("Vault challenge on a foreign host is invalid", t, func() {
		details := fixtures.GetSetupTokenChallenge("testToken1",
			"https://www.sandbox.paypal.com.attacker.net/approve?token=X")

		decision := policy.ForVault(details)

		So(decision.Kind, ShouldEqual, ChallengeInvalid)
		So(decision.Reason, ShouldEqual, ReasonUntrustedURL)
	})

	Convey("Payer action without an approve link is invalid", t, func() {
		details := &models.SetupTokenDetails{
			ID:     "testToken1",
			Status: models.StatusPayerActionRequired,
		}

		decision := policy.ForVault(details)

		So(decision.Kind, ShouldEqual, ChallengeInvalid)
		So(decision.Reason, ShouldEqual, ReasonNoChallengeLink)
	})
}
