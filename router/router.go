package router

import (
	"net/http"

	"gateway-portal/app/controllers"
	"gateway-portal/app/middleware"
)

func NewRouter(
	ingestCtrl *controllers.IngestController,
	dashCtrl *controllers.DashboardController,
	actionCtrl *controllers.ActionController,
	gatewayCtrl *controllers.GatewayController,
	logCtrl *controllers.LogEventController,
	channelCtrl *controllers.ChannelController,
	ticketCtrl *controllers.TicketController,
	authCtrl *controllers.AuthController,
	adminCtrl *controllers.AdminController,
	mw *middleware.Auth,
	gwAuth *middleware.GatewayAuth,
) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/api/login", authCtrl.Login)

	// gateway-facing (key auth, separate from operator sessions)
	mux.Handle("/api/ingest-metrics", gwAuth.Verify(http.HandlerFunc(ingestCtrl.Post)))

	// operator endpoints
	mux.Handle("/api/dashboard/stats", mw.RequireAuth(http.HandlerFunc(dashCtrl.Stats)))
	mux.Handle("/api/metrics/mirth/history", mw.RequireAuth(http.HandlerFunc(dashCtrl.History)))
	mux.Handle("/api/gateways", mw.RequireAuth(http.HandlerFunc(gatewayCtrl.Get)))
	mux.Handle("/api/logs", mw.RequireAuth(http.HandlerFunc(logCtrl.List)))
	mux.Handle("/api/channels", mw.RequireAuth(http.HandlerFunc(channelCtrl.List)))
	mux.Handle("/api/actions", mw.RequireAuth(http.HandlerFunc(actionCtrl.List)))
	mux.Handle("/api/actions/create", mw.RequireAuth(http.HandlerFunc(actionCtrl.Create)))
	mux.Handle("/api/integrations/mantis/create-ticket", mw.RequireAuth(http.HandlerFunc(ticketCtrl.Post)))

	// admin-only
	mux.Handle("/api/actions/ack", mw.RequireAdmin(http.HandlerFunc(actionCtrl.UpdateStatus)))
	mux.Handle("/api/gateways/register", mw.RequireAdmin(http.HandlerFunc(gatewayCtrl.Register)))
	mux.Handle("/admin/users", mw.RequireAdmin(http.HandlerFunc(adminCtrl.CreateUser)))

	return mux
}
