package service

import (
	"github.com/paypal/payments-sdk-go/models"
)

// CardDelegate observes one card approval flow. Exactly one of
// OnApproveSuccess, OnApproveCancel or OnApproveError is invoked per
// ApproveOrder call. ThreeDSecureWillLaunch fires strictly before the
// challenge session starts; ThreeDSecureDidFinish fires strictly before the
// terminal notification.
type CardDelegate interface {
	OnApproveSuccess(result *models.CardResult)
	OnApproveCancel()
	OnApproveError(err error)
	ThreeDSecureWillLaunch()
	ThreeDSecureDidFinish()
}

// CardVaultDelegate observes one card vault flow, with the same delivery
// guarantees as CardDelegate
type CardVaultDelegate interface {
	OnVaultSuccess(result *models.CardVaultResult)
	OnVaultCancel()
	OnVaultError(err error)
	ThreeDSecureWillLaunch()
	ThreeDSecureDidFinish()
}

// PayPalWebCheckoutDelegate observes one PayPal web checkout flow
type PayPalWebCheckoutDelegate interface {
	OnPayPalSuccess(result *models.PayPalWebCheckoutResult)
	OnPayPalCancel()
	OnPayPalError(err error)
}

// CardCallbacks adapts plain functions to CardDelegate. Nil fields are
// no-ops.
type CardCallbacks struct {
	OnSuccess    func(result *models.CardResult)
	OnCancel     func()
	OnError      func(err error)
	OnWillLaunch func()
	OnDidFinish  func()
}

// OnApproveSuccess implements CardDelegate
func (c *CardCallbacks) OnApproveSuccess(result *models.CardResult) {
	if c.OnSuccess != nil {
		c.OnSuccess(result)
	}
}

// OnApproveCancel implements CardDelegate
func (c *CardCallbacks) OnApproveCancel() {
	if c.OnCancel != nil {
		c.OnCancel()
	}
}

// OnApproveError implements CardDelegate
func (c *CardCallbacks) OnApproveError(err error) {
	if c.OnError != nil {
		c.OnError(err)
	}
}

// ThreeDSecureWillLaunch implements CardDelegate
func (c *CardCallbacks) ThreeDSecureWillLaunch() {
	if c.OnWillLaunch != nil {
		c.OnWillLaunch()
	}
}

// ThreeDSecureDidFinish implements CardDelegate
func (c *CardCallbacks) ThreeDSecureDidFinish() {
	if c.OnDidFinish != nil {
		c.OnDidFinish()
	}
}

// CardVaultCallbacks adapts plain functions to CardVaultDelegate. Nil fields
// are no-ops.
type CardVaultCallbacks struct {
	OnSuccess    func(result *models.CardVaultResult)
	OnCancel     func()
	OnError      func(err error)
	OnWillLaunch func()
	OnDidFinish  func()
}

// OnVaultSuccess implements CardVaultDelegate
func (c *CardVaultCallbacks) OnVaultSuccess(result *models.CardVaultResult) {
	if c.OnSuccess != nil {
		c.OnSuccess(result)
	}
}

// OnVaultCancel implements CardVaultDelegate
func (c *CardVaultCallbacks) OnVaultCancel() {
	if c.OnCancel != nil {
		c.OnCancel()
	}
}

// OnVaultError implements CardVaultDelegate
func (c *CardVaultCallbacks) OnVaultError(err error) {
	if c.OnError != nil {
		c.OnError(err)
	}
}

// ThreeDSecureWillLaunch implements CardVaultDelegate
func (c *CardVaultCallbacks) ThreeDSecureWillLaunch() {
	if c.OnWillLaunch != nil {
		c.OnWillLaunch()
	}
}

// ThreeDSecureDidFinish implements CardVaultDelegate
func (c *CardVaultCallbacks) ThreeDSecureDidFinish() {
	if c.OnDidFinish != nil {
		c.OnDidFinish()
	}
}

// PayPalWebCheckoutCallbacks adapts plain functions to
// PayPalWebCheckoutDelegate. Nil fields are no-ops.
type PayPalWebCheckoutCallbacks struct {
	OnSuccess func(result *models.PayPalWebCheckoutResult)
	OnCancel  func()
	OnError   func(err error)
}

// OnPayPalSuccess implements PayPalWebCheckoutDelegate
func (c *PayPalWebCheckoutCallbacks) OnPayPalSuccess(result *models.PayPalWebCheckoutResult) {
	if c.OnSuccess != nil {
		c.OnSuccess(result)
	}
}

// OnPayPalCancel implements PayPalWebCheckoutDelegate
func (c *PayPalWebCheckoutCallbacks) OnPayPalCancel() {
	if c.OnCancel != nil {
		c.OnCancel()
	}
}

// OnPayPalError implements PayPalWebCheckoutDelegate
func (c *PayPalWebCheckoutCallbacks) OnPayPalError(err error) {
	if c.OnError != nil {
		c.OnError(err)
	}
}
