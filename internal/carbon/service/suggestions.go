package service

import (
	"strings"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
)

const suggestionsIntro = "Here is a report built from your quiz answers. Each section below points at a " +
	"habit you can change to shrink your carbon footprint and live more sustainably.\n\n"

// suggestionText maps quiz field → answer → paragraph. Answers outside the
// known vocabulary contribute nothing.
var suggestionText = []map[string]string{
	// transportation
	{
		"Never": "You never use public transport, which makes travel the easiest place to cut emissions. " +
			"Buses, trains and trams move far more people per litre of fuel than private cars, and using them " +
			"also eases congestion. Where transit does not reach, carpool or share rides instead of driving " +
			"alone. Walk or cycle for short trips, and if distances are too long for that, an e-bike or " +
			"electric scooter keeps emissions low.",
		"Occasionally": "You already take public transport some of the time, which is a good start. Try to " +
			"make it your default for commuting and errands so the car becomes the exception. When transit is " +
			"not practical, cover short distances on foot or by bike; it cuts fuel use and is good for your " +
			"health.",
		"Frequently": "You use public transport often, which already keeps your travel emissions down. Look " +
			"at which options you use: electric trains are usually cleaner than diesel buses, and some routes " +
			"run on greener fleets. If you do need a car, consider a hybrid or electric model, and check for " +
			"local incentives that reward transit or EV use. Keep walking or cycling for the short hops.",
	},
	// meatConsumption
	{
		"Frequently": "Eating meat often, red meat in particular, carries a large emissions cost, mostly " +
			"methane from cattle. Cut back gradually: start with one plant-based day a week, swap beef and " +
			"lamb for chicken, and try tofu, tempeh or lentils as protein. When you do buy meat, choose " +
			"sustainably farmed sources.",
		"Occasionally": "You already eat meat only some of the time. Lean further on beans, peas and quinoa, " +
			"which supply plenty of protein at a fraction of the footprint, and plan a few more meals around " +
			"them each week. When you do eat meat, buy from farms with sound environmental practices.",
		"Rarely": "You rarely eat meat, which is already a big win. If you want to go further, try a fully " +
			"plant-based or plant-rich diet; beyond the climate benefit it is linked to lower rates of heart " +
			"disease and diabetes. Lentil stews, veggie burgers and grain bowls are easy places to start.",
	},
	// recycling
	{
		"Never": "Recycling is one of the simplest ways to cut waste. Find out what your local service " +
			"accepts, usually plastic, paper, glass and metal, and set up separate bins at home so sorting " +
			"takes no effort. Carry reusable bags, bottles and containers, and prefer products with little " +
			"packaging or made from recycled material.",
		"Rarely": "You recycle now and then; the next step is making it routine. Label bins at home, rinse " +
			"and sort items before they go in since contamination sends whole loads to landfill, and cut " +
			"single-use plastic where you can. Upcycling old items into something useful is another way to " +
			"keep them out of the bin.",
		"Frequently": "You recycle regularly, which is great. The bigger gains now come earlier in the chain: " +
			"reduce and reuse before you recycle. Pick goods with recyclable or reusable packaging, replace " +
			"disposable plastics with bamboo or steel alternatives, and support businesses that use " +
			"compostable packaging.",
	},
	// energyEfficiency
	{
		"No": "Energy-efficient appliances can make a noticeable dent in your usage. Replace incandescent " +
			"bulbs with LEDs, and when an appliance needs replacing choose a high efficiency rating. Unplug " +
			"idle devices or put them on a switched power strip, and a programmable thermostat will stop you " +
			"heating or cooling an empty house.",
		"Yes": "You already use energy-efficient appliances. To go further, look at generating your own power " +
			"with rooftop solar, which pays back over time. Good insulation and double glazing cut heating " +
			"and cooling demand, and a smart thermostat can trim what is left.",
	},
	// electricityUsage
	{
		"High": "Your electricity use is on the high side, so there is a lot to gain. Start with a home energy " +
			"audit to find where power is wasted. Switch to LED lighting, unplug what you are not using, and " +
			"use a smart meter to watch consumption. Run heavy appliances outside peak hours and favour " +
			"efficient models when you replace them.",
		"Moderate": "Your electricity use is moderate, with room to improve. Efficient lighting and " +
			"appliances, a programmable thermostat and power strips that cut several devices at once all " +
			"help. Use daylight instead of lamps where you can, and consider a renewable supply such as solar " +
			"or a green energy plan.",
		"Low": "Your electricity use is already low. Smart home devices can help you track and trim it " +
			"further. Keep choosing efficient appliances, make sure the house is well insulated, and consider " +
			"adding solar or wind to your supply.",
	},
}

// GenerateSuggestions turns quiz answers into a plain-text report: an intro
// followed by one paragraph per recognised answer, in quiz order. Each
// paragraph ends with a blank line.
func GenerateSuggestions(a domain.QuizAnswers) string {
	answers := []string{a.Transportation, a.MeatConsumption, a.Recycling, a.EnergyEfficiency, a.ElectricityUsage}

	var b strings.Builder
	b.WriteString(suggestionsIntro)
	for i, answer := range answers {
		if p, ok := suggestionText[i][answer]; ok {
			b.WriteString(p)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
