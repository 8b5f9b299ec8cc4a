package services

import (
	"fmt"

	"itinera/internal/models/request_models"
)

// TransportModeLabel maps the request's transport mode onto the wording
// the prompt uses to keep distance/time/cost estimates realistic.
func TransportModeLabel(mode string) string {
	switch mode {
	case "walking":
		return "A PIEDI (considera distanze brevi)"
	case "public_transport":
		return "MEZZI PUBBLICI (Bus/Metro/Tram)"
	default:
		return "AUTO/TAXI (Traffico stradale)"
	}
}

// BuildItineraryPrompt composes the single natural-language instruction
// sent to the generation service. All content rules live here; the shape
// rules live in the attached response schema.
func BuildItineraryPrompt(req request_models.GenerateItineraryRequest) string {
	transportLabel := TransportModeLabel(req.TransportMode)

	return fmt.Sprintf(`Agisci come una guida turistica esperta locale.
Crea un itinerario dettagliato di %d giorni per visitare %s.

DETTAGLI LOGISTICI:
- Punto di partenza (Alloggio): %s.
- Data di inizio viaggio: %s.
- L'itinerario del primo giorno deve iniziare alle ore: %s.
- L'itinerario dell'ultimo giorno deve concludersi entro le ore: %s.

MODALITÀ DI TRASPORTO:
- L'utente si sposterà principalmente: %s.

CONTENUTO:
- TEMA (theme) specifico per ogni giornata.
- 'dailyContext' (max 30-40 parole): curiosità o cenni storici.
- Attività principali sequenziali.

COSTI E PREZZI:
- Per ogni attività (sia principale che opzionale), DEVI fornire una stima realistica del prezzo nel campo 'price'.
- Se è un ristorante o bar, scrivi un range di prezzo indicativo (es: "€20-35 a persona", "€10-15").
- Se è un'attrazione, scrivi il costo del biglietto intero (es: "€18", "Gratis").

ISTRUZIONI SPECIALI GIORNO 1:
- La PRIMISSIMA attività del Giorno 1 (all'orario %s) DEVE essere: "Arrivo e Trasferimento in Hotel".
- Descrivi le migliori opzioni per raggiungere l'alloggio (%s) dall'aeroporto principale o stazione centrale di %s.
- Indica chiaramente costi e tempi per Taxi, Bus o Treno nella descrizione.
- Imposta 'type' a 'TRANSIT' e 'subtype' a 'Transfer/Arrivo'.

REGOLE GENERALI ATTIVITÀ:
- IMPORTANTE: per ogni attività successiva (esclusa la prima), calcola realisticamente 'distanceFromPrevious', 'travelTime' e 'transportCost' basandoti sulla modalità di trasporto scelta (%s).
- 'optionalActivities': per ogni giornata, suggerisci 1 o 2 attività EXTRA facoltative.

LINGUA:
- TUTTO il contenuto DEVE essere rigorosamente in LINGUA ITALIANA.

FORMATO:
- Rispondi ESCLUSIVAMENTE con un oggetto JSON valido conforme allo schema fornito.`,
		req.Days, req.City,
		req.HotelAddress,
		req.StartDate,
		req.ArrivalTime,
		req.DepartureTime,
		transportLabel,
		req.ArrivalTime,
		req.HotelAddress, req.City,
		req.TransportMode,
	)
}
