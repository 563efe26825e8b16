package api

import (
	"net/http"

	"bitbucket.org/rutaandina/backend/config"
	"bitbucket.org/rutaandina/backend/middlewares"
	"bitbucket.org/rutaandina/backend/server"
)

// HealthcheckHandler indicates the service's healthy
func HealthcheckHandler(_ *config.AppContext, w *middlewares.ResponseWriter, _ *http.Request) {
	w.String(http.StatusOK, "OK")
}

// GetRoutes ...
func GetRoutes() []*server.Route {
	return []*server.Route{
		{Path: "/healthcheck", Methods: []string{"GET", "HEAD"}, Handler: HealthcheckHandler, IsProtected: false},

		// Auth
		{Path: "/auth/login", Methods: []string{"POST", "HEAD"}, Handler: Login, IsProtected: false},
		{Path: "/auth/password", Methods: []string{"PUT", "HEAD"}, Handler: UpdateUserPassword, IsProtected: false},
		{Path: "/auth/token", Methods: []string{"POST", "HEAD"}, Handler: SendRememberToken, IsProtected: false},

		// User
		{Path: "/user/admin", Methods: []string{"POST", "HEAD"}, Handler: InsertAdminUser, IsProtected: true},
		{Path: "/user", Methods: []string{"GET", "HEAD"}, Handler: GetUsers, IsProtected: true},

		// Driver
		{Path: "/drivers", Methods: []string{"POST", "HEAD"}, Handler: InsertDriver, IsProtected: false},
		{Path: "/drivers", Methods: []string{"GET", "HEAD"}, Handler: GetDrivers, IsProtected: false},
		{Path: "/drivers/{driver_id}", Methods: []string{"GET", "HEAD"}, Handler: GetDriver, IsProtected: false},
		{Path: "/drivers/{driver_id}", Methods: []string{"PUT", "HEAD"}, Handler: UpdateDriver, IsProtected: false},
		{Path: "/drivers/{driver_id}", Methods: []string{"DELETE", "HEAD"}, Handler: DeleteDriver, IsProtected: false},

		// Tour guide
		{Path: "/tourguides", Methods: []string{"POST", "HEAD"}, Handler: InsertTourGuide, IsProtected: false},
		{Path: "/tourguides", Methods: []string{"GET", "HEAD"}, Handler: GetTourGuides, IsProtected: false},
		{Path: "/tourguides/{tour_guide_id}", Methods: []string{"GET", "HEAD"}, Handler: GetTourGuide, IsProtected: false},
		{Path: "/tourguides/{tour_guide_id}", Methods: []string{"PUT", "HEAD"}, Handler: UpdateTourGuide, IsProtected: false},
		{Path: "/tourguides/{tour_guide_id}", Methods: []string{"DELETE", "HEAD"}, Handler: DeleteTourGuide, IsProtected: false},

		// Payment
		{Path: "/payments", Methods: []string{"POST", "HEAD"}, Handler: InsertPayment, IsProtected: false},
		{Path: "/payments", Methods: []string{"GET", "HEAD"}, Handler: GetPayments, IsProtected: false},
		{Path: "/payments/{payment_id}", Methods: []string{"GET", "HEAD"}, Handler: GetPayment, IsProtected: false},
		{Path: "/payments/{payment_id}", Methods: []string{"PUT", "HEAD"}, Handler: UpdatePayment, IsProtected: false},
		{Path: "/payments/{payment_id}", Methods: []string{"DELETE", "HEAD"}, Handler: DeletePayment, IsProtected: false},

		// Tour request
		{Path: "/tourrequests", Methods: []string{"POST", "HEAD"}, Handler: InsertTourRequest, IsProtected: false},
		{Path: "/tourrequests", Methods: []string{"GET", "HEAD"}, Handler: GetTourRequests, IsProtected: false},
		{Path: "/tourrequests/{request_id}", Methods: []string{"GET", "HEAD"}, Handler: GetTourRequest, IsProtected: false},
		{Path: "/tourrequests/{request_id}", Methods: []string{"PUT", "HEAD"}, Handler: UpdateTourRequest, IsProtected: false},
		{Path: "/tourrequests/{request_id}/cancel", Methods: []string{"PUT", "HEAD"}, Handler: CancelTourRequest, IsProtected: false},
	}
}
