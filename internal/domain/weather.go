package domain

// Weather is a current-conditions snapshot for one point, in imperial units.
type Weather struct {
	Temp        int    `json:"temp"`
	FeelsLike   int    `json:"feelsLike"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Pressure    int    `json:"pressure"`
}
