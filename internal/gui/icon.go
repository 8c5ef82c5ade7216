package gui

import "fyne.io/fyne/v2"

const iconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
<rect x="4" y="8" width="40" height="30" rx="6" fill="#2471a3"/>
<path d="M14 38 L14 48 L24 38 Z" fill="#2471a3"/>
<rect x="22" y="24" width="38" height="28" rx="6" fill="#e74c3c"/>
<path d="M50 52 L50 60 L42 52 Z" fill="#e74c3c"/>
<text x="24" y="29" font-family="sans-serif" font-size="16" fill="white" text-anchor="middle">Aa</text>
<text x="41" y="44" font-family="sans-serif" font-size="14" fill="white" text-anchor="middle">Éé</text>
</svg>`

// GetAppIcon returns the application icon as a Fyne resource
func GetAppIcon() fyne.Resource {
	return fyne.NewStaticResource("lingopad.svg", []byte(iconSVG))
}
