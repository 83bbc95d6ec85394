package services

import (
	"context"
	"log"
	"os"
	"time"

	"MediBook/apperrors"
	"MediBook/constants"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const paymentTimeout = 15 * time.Second

// PaymentService wraps the external checkout collaborator. The configured
// client is injected into the booking flow instead of living in package state.
type PaymentService struct {
	api        *client.API
	successURL string
	cancelURL  string
}

func NewPaymentService() *PaymentService {
	api := &client.API{}
	api.Init(os.Getenv("STRIPE_SECRET_KEY"), nil)
	return &PaymentService{
		api:        api,
		successURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
		cancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
	}
}

/*
* Create a checkout session for the consultation fee
* The session carries the booking details as metadata
* Bounded by a request-scoped timeout, failure is an upstream error
 */
func (p *PaymentService) CreateCheckoutSession(ctx context.Context, doctor map[string]interface{}, date, timeGiven string) (*stripe.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, paymentTimeout)
	defer cancel()

	fee := asFloat(doctor["fee"])
	name, _ := doctor["name"].(string)
	doctorId, _ := doctor["code"].(string)

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(int64(fee * 100)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Appointment with Dr. " + name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("doctorId", doctorId)
	params.AddMetadata("date", date)
	params.AddMetadata("time", timeGiven)

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		log.Println("Error from checkoutSessions.New: ", err)
		return nil, apperrors.Upstream(constants.CHECKOUT_SESSION_FAILED)
	}
	return session, nil
}
