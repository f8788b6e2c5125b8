package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathInt64 binds a required numeric path parameter.
func pathInt64(c echo.Context, name string) (int64, error) {
	var value int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// pathString binds a required textual path parameter.
func pathString(c echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// queryString binds an optional query parameter; a missing one yields "".
func queryString(c echo.Context, name string) (string, error) {
	var value string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// listFilter holds the optional filters shared by the listing endpoints.
type listFilter struct {
	Status string
	Search string
	From   string
	To     string
}

func bindListFilter(c echo.Context) (listFilter, error) {
	var (
		f   listFilter
		err error
	)
	if f.Status, err = queryString(c, "status"); err != nil {
		return listFilter{}, err
	}
	if f.Search, err = queryString(c, "q"); err != nil {
		return listFilter{}, err
	}
	if f.From, err = queryString(c, "from"); err != nil {
		return listFilter{}, err
	}
	if f.To, err = queryString(c, "to"); err != nil {
		return listFilter{}, err
	}
	return f, nil
}
