// Package guardhttp turns argument failures reported by package guard into
// HTTP responses at the boundary of a service.
//
// Handlers return errors instead of writing them. Any error carrying a
// *guard.ArgumentError is answered with 400 Bad Request and a JSON body whose
// "error" object carries the kind key as code, the full message, and the
// per-parameter messages under details:
//
//	{"error":{"code":"out_of_range_argument","message":"limit: accepted range: [1, 100]","details":{"limit":["accepted range: [1, 100]"]}}}
//
// Every other error is answered with the fallback status (500 by default) and
// a generic message, so internal error text never leaks to clients. Rejected
// arguments are logged at warn level, everything else at error level.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Method(http.MethodGet, "/users/{id}", guardhttp.Handler(func(w http.ResponseWriter, r *http.Request) error {
//	    id, err := guard.NotDefault("id", parseID(chi.URLParam(r, "id")))
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}, guardhttp.WithLogger(log)))
package guardhttp
