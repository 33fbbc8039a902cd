package api

import (
	"net/http"
	"strings"
)

// Endpoint describes one remote operation.
type Endpoint struct {
	// Name identifies the endpoint in queries handed to observers.
	Name string
	// Method is the HTTP method.
	Method string
	// Path is the fixed path prefix, relative to the base URL.
	Path string
	// Public endpoints are sent without credentials.
	Public bool
}

// path builds the request path for ep. Parameters are appended verbatim as
// path segments; trailing empty parameters are dropped so that an absent
// subdomain addresses the root domain.
func (ep Endpoint) path(params ...string) string {
	for len(params) > 0 && params[len(params)-1] == "" {
		params = params[:len(params)-1]
	}
	if len(params) == 0 {
		return ep.Path
	}
	return ep.Path + "/" + strings.Join(params, "/")
}

// Endpoint table.
var (
	Ping    = Endpoint{Name: "ping", Method: http.MethodPost, Path: "/ping"}
	Pricing = Endpoint{Name: "pricing", Method: http.MethodGet, Path: "/pricing/get", Public: true}

	GetNameServers    = Endpoint{Name: "getNs", Method: http.MethodPost, Path: "/domain/getNs"}
	UpdateNameServers = Endpoint{Name: "updateNs", Method: http.MethodPost, Path: "/domain/updateNs"}
	ListDomains       = Endpoint{Name: "listAll", Method: http.MethodPost, Path: "/domain/listAll"}
	CheckDomain       = Endpoint{Name: "checkDomain", Method: http.MethodPost, Path: "/domain/checkDomain"}

	GetURLForwarding = Endpoint{Name: "getUrlForwarding", Method: http.MethodPost, Path: "/domain/getUrlForwarding"}
	AddURLForward    = Endpoint{Name: "addUrlForward", Method: http.MethodPost, Path: "/domain/addUrlForward"}
	DeleteURLForward = Endpoint{Name: "deleteUrlForward", Method: http.MethodPost, Path: "/domain/deleteUrlForward"}

	GetGlue    = Endpoint{Name: "getGlue", Method: http.MethodPost, Path: "/domain/getGlue"}
	CreateGlue = Endpoint{Name: "createGlue", Method: http.MethodPost, Path: "/domain/createGlue"}
	UpdateGlue = Endpoint{Name: "updateGlue", Method: http.MethodPost, Path: "/domain/updateGlue"}
	DeleteGlue = Endpoint{Name: "deleteGlue", Method: http.MethodPost, Path: "/domain/deleteGlue"}

	RetrieveDNS           = Endpoint{Name: "retrieve", Method: http.MethodPost, Path: "/dns/retrieve"}
	RetrieveDNSByNameType = Endpoint{Name: "retrieveByNameType", Method: http.MethodPost, Path: "/dns/retrieveByNameType"}
	CreateDNS             = Endpoint{Name: "create", Method: http.MethodPost, Path: "/dns/create"}
	EditDNS               = Endpoint{Name: "edit", Method: http.MethodPost, Path: "/dns/edit"}
	EditDNSByNameType     = Endpoint{Name: "editByNameType", Method: http.MethodPost, Path: "/dns/editByNameType"}
	DeleteDNS             = Endpoint{Name: "delete", Method: http.MethodPost, Path: "/dns/delete"}
	DeleteDNSByNameType   = Endpoint{Name: "deleteByNameType", Method: http.MethodPost, Path: "/dns/deleteByNameType"}

	GetDNSSEC    = Endpoint{Name: "getDnssecRecords", Method: http.MethodPost, Path: "/dns/getDnssecRecords"}
	CreateDNSSEC = Endpoint{Name: "createDnssecRecord", Method: http.MethodPost, Path: "/dns/createDnssecRecord"}
	DeleteDNSSEC = Endpoint{Name: "deleteDnssecRecord", Method: http.MethodPost, Path: "/dns/deleteDnssecRecord"}

	RetrieveSSL = Endpoint{Name: "sslRetrieve", Method: http.MethodPost, Path: "/ssl/retrieve"}
)
