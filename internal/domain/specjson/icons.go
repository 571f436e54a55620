package specjson

import "slices"

// LogoIcons is the icon catalogue offered to the model for logo.iconName
// and feature icons.
var LogoIcons = []string{
	"building", "building-2", "store", "shop", "laptop", "smartphone", "monitor",
	"cpu", "database", "server", "heart", "stethoscope", "graduation-cap", "book",
	"camera", "image", "utensils", "coffee", "users", "briefcase", "calculator",
	"sparkles", "target", "trophy", "car", "truck", "chart-bar", "shopping-cart",
	"dollar-sign", "palette", "brush", "leaf", "tree", "dumbbell", "gamepad-2",
	"wrench", "shield", "zap", "phone", "mail", "megaphone", "scissors", "gem",
}

func KnownLogoIcon(name string) bool { return slices.Contains(LogoIcons, name) }
