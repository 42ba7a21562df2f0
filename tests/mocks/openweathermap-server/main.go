package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type CurrentWeather struct {
	Dt      int64              `json:"dt"`
	Name    string             `json:"name"`
	Sys     Sys                `json:"sys"`
	Main    Main               `json:"main"`
	Weather []Condition        `json:"weather"`
	Rain    map[string]float64 `json:"rain,omitempty"`
}

type Sys struct {
	Country string `json:"country"`
}

type Main struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type Condition struct {
	Description string `json:"description"`
}

var observations = map[string]CurrentWeather{
	"kyiv": {
		Name:    "Kyiv",
		Sys:     Sys{Country: "UA"},
		Main:    Main{Temp: 14.2, Humidity: 71},
		Weather: []Condition{{Description: "light rain"}},
		Rain:    map[string]float64{"1h": 0.31},
	},
	"lviv": {
		Name:    "Lviv",
		Sys:     Sys{Country: "UA"},
		Main:    Main{Temp: 11.8, Humidity: 80},
		Weather: []Condition{{Description: "overcast clouds"}},
	},
	"warsaw": {
		Name:    "Warsaw",
		Sys:     Sys{Country: "PL"},
		Main:    Main{Temp: 16.5, Humidity: 64},
		Weather: []Condition{{Description: "clear sky"}},
	},
	"berlin": {
		Name:    "Berlin",
		Sys:     Sys{Country: "DE"},
		Main:    Main{Temp: 12.0, Humidity: 82},
		Weather: []Condition{{Description: "moderate rain"}},
		Rain:    map[string]float64{"1h": 1.2},
	},
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/weather", func(c *gin.Context) {
		city := strings.ToLower(strings.TrimSpace(c.Query("q")))

		if c.Query("appid") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"cod": 401, "message": "Invalid API key."})
			return
		}

		switch city {
		case "":
			c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "Nothing to geocode"})
			return
		case "servererror":
			c.JSON(http.StatusInternalServerError, gin.H{"cod": "500", "message": "Internal server error"})
			return
		case "ratelimited":
			c.JSON(http.StatusTooManyRequests, gin.H{"cod": 429, "message": "Your account is temporary blocked"})
			return
		}

		observation, exists := observations[city]
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
			return
		}

		observation.Dt = time.Now().Unix()
		c.JSON(http.StatusOK, observation)
	})

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	slog.Info("Mock OpenWeatherMap server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
