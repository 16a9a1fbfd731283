// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

const (
	// IdleStateName idle state name
	IdleStateName = "Idle"
	// AwaitingPaymentStateName awaiting payment state name
	AwaitingPaymentStateName = "AwaitingPayment"
	// PaymentCompleteStateName payment complete state name
	PaymentCompleteStateName = "PaymentComplete"
	// DispensedStateName dispensed state name
	DispensedStateName = "Dispensed"
	// CanceledStateName canceled state name
	CanceledStateName = "Canceled"
)
