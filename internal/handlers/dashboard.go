package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/namefreezers/weather-dashboard/internal/services"
	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

const dashboardTemplate = "dashboard.html"

// Templates parses the embedded page templates, for gin's SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type dashboardPage struct {
	City    string
	Reading *types.Reading
	Error   string
}

// DashboardHandler handles GET /.
// Without a city parameter it shows the empty form prefilled with defaultCity.
func DashboardHandler(svc services.LookupService, defaultCity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		city, submitted := c.GetQuery("city")
		if !submitted {
			c.HTML(http.StatusOK, dashboardTemplate, dashboardPage{City: defaultCity})
			return
		}

		page := dashboardPage{City: city}
		w, err := svc.Lookup(c.Request.Context(), city)
		if err != nil {
			page.Error = services.UserMessage(err, city)
		} else {
			page.Reading = &w
		}
		c.HTML(http.StatusOK, dashboardTemplate, page)
	}
}
