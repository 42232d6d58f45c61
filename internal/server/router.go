package server

import "net/http"

// Router binds every endpoint. Routing stays explicit on the stdlib mux;
// the /accounts/balance path must be registered before the /accounts/
// subtree dispatch sees it, which the exact-match rule of ServeMux
// handles via the longer pattern.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.health)
	mux.HandleFunc("/accounts", s.accounts)
	mux.HandleFunc("/accounts/balance", s.balance)
	mux.HandleFunc("/accounts/", s.accountSubroutes)
	mux.HandleFunc("/transfer", s.transfer)
	mux.HandleFunc("/summary", s.summary)

	return mux
}
