package commands

import (
	"fmt"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/ports"
)

// customerTopic is the push topic a customer's devices subscribe to.
// Customers are managed by an external identity service, so the dispatch
// core never sees their device tokens; topic addressing keeps the gateway
// contract uniform for both audiences.
func customerTopic(customerID kernel.UUID) string {
	return "customer-" + customerID.String()
}

// newShipmentOffer is the push sent to an eligible driver when a shipment
// enters (or re-enters) the broadcast.
func newShipmentOffer(s *shipment.Shipment, d *driver.Driver) ports.Notification {
	return ports.Notification{
		Token: d.FCMToken(),
		Title: "New shipment available",
		Body: fmt.Sprintf("%s to %s, %.0f kg, %s",
			s.OriginAddress(), s.DestinationAddress(), s.WeightKg(), s.Price()),
		Data: map[string]string{
			"type":       "shipment_offer",
			"shipmentId": s.ID().String(),
		},
	}
}

// shipmentAcceptedNotice is the push sent to the customer's topic after a
// driver wins the accept race.
func shipmentAcceptedNotice(s *shipment.Shipment, d *driver.Driver) ports.Notification {
	return ports.Notification{
		Token: customerTopic(s.CustomerID()),
		Title: "Driver assigned",
		Body:  fmt.Sprintf("%s accepted your shipment", d.Name()),
		Data: map[string]string{
			"type":       "shipment_accepted",
			"shipmentId": s.ID().String(),
			"driverId":   d.ID().String(),
		},
	}
}

// shipmentStatusNotice is the push sent to the customer's topic when the
// assigned driver reports progress.
func shipmentStatusNotice(s *shipment.Shipment) ports.Notification {
	return ports.Notification{
		Token: customerTopic(s.CustomerID()),
		Title: "Shipment update",
		Body:  fmt.Sprintf("Your shipment is now %s", s.Status()),
		Data: map[string]string{
			"type":       "shipment_status",
			"shipmentId": s.ID().String(),
			"status":     s.Status().String(),
		},
	}
}

// shipmentCancelledNotice is the push sent to the previously assigned
// driver when the customer cancels.
func shipmentCancelledNotice(s *shipment.Shipment, d *driver.Driver) ports.Notification {
	return ports.Notification{
		Token: d.FCMToken(),
		Title: "Shipment cancelled",
		Body:  fmt.Sprintf("The shipment from %s was cancelled by the customer", s.OriginAddress()),
		Data: map[string]string{
			"type":       "shipment_cancelled",
			"shipmentId": s.ID().String(),
		},
	}
}
