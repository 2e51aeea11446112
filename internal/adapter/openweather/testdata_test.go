package openweather

// coorsPayload is a trimmed One Call response captured for Coors Field.
const coorsPayload = `{
  "lat": 39.7559,
  "lon": -104.9942,
  "timezone": "America/Denver",
  "current": {
    "dt": 1717257600,
    "temp": 84.6,
    "feels_like": 82.9,
    "pressure": 1012,
    "humidity": 21,
    "dew_point": 40.1,
    "uvi": 7.8,
    "visibility": 10000,
    "wind_speed": 9.2,
    "wind_deg": 190,
    "weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}]
  },
  "hourly": [
    {
      "dt": 1717257600,
      "temp": 84.6, "feels_like": 82.9, "pressure": 1012, "humidity": 21,
      "dew_point": 40.1, "uvi": 7.8, "visibility": 10000,
      "wind_speed": 9.2, "wind_deg": 190,
      "weather": [{"main": "Clear", "description": "clear sky"}],
      "pop": 0
    },
    {
      "dt": 1717261200,
      "temp": 81.3, "feels_like": 80.1, "pressure": 1011, "humidity": 25,
      "dew_point": 41.0, "uvi": 5.1, "visibility": 10000,
      "wind_speed": 12.4, "wind_deg": 200,
      "weather": [{"main": "Clouds", "description": "scattered clouds"}],
      "pop": 0.12
    },
    {
      "dt": 1717264800,
      "temp": 74.0, "feels_like": 74.0, "pressure": 1010, "humidity": 48,
      "dew_point": 52.0, "uvi": 2.0, "visibility": 8000,
      "wind_speed": 15.0, "wind_deg": 250,
      "weather": [{"main": "Rain", "description": "light rain"}],
      "rain": {"1h": 0.8},
      "pop": 0.64
    }
  ]
}`
