package gateway

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
)

// The gateway answers with inconsistent shapes: a typed JSON object, a JSON
// object whose payload is a JSON-encoded string, or raw XML. Everything in
// this file normalizes those shapes so the rest of the code never sees wire
// formats.

type chargeResponse struct {
	StatusCode      string `json:"statusCode" xml:"statusCode"`
	ErrorMessage    string `json:"errorMessage" xml:"errorMessage"`
	Approved        string `json:"approved" xml:"approved"`
	ReferenceNumber string `json:"referenceNumber" xml:"referenceNumber"`
	CardMask        string `json:"cardMask" xml:"cardMask"`
	CardBrand       string `json:"cardBrand" xml:"cardBrand"`
}

type embeddedResponse struct {
	Data string `json:"data"`
}

func parseChargeResponse(body []byte) (chargeResponse, bool) {
	var resp chargeResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.StatusCode != "" {
		return resp, true
	}

	var embedded embeddedResponse
	if err := json.Unmarshal(body, &embedded); err == nil && embedded.Data != "" {
		if err := json.Unmarshal([]byte(embedded.Data), &resp); err == nil && resp.StatusCode != "" {
			return resp, true
		}
	}

	if err := xml.Unmarshal(body, &resp); err == nil && resp.StatusCode != "" {
		return resp, true
	}

	return chargeResponse{}, false
}

type tokenResponse struct {
	Token string `json:"token"`
}

// extractToken attempts the three known token response shapes in order:
// typed JSON field, JSON string embedded in a JSON field, raw XML tag.
func extractToken(body []byte) (string, bool) {
	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Token != "" {
		return resp.Token, true
	}

	var embedded embeddedResponse
	if err := json.Unmarshal(body, &embedded); err == nil && embedded.Data != "" {
		if err := json.Unmarshal([]byte(embedded.Data), &resp); err == nil && resp.Token != "" {
			return resp.Token, true
		}
	}

	if token, ok := scanXMLTag(body, "token"); ok {
		return token, true
	}

	return "", false
}

// scanXMLTag returns the character data of the first XML element with the
// given local name, wherever it sits in the document.
func scanXMLTag(body []byte, name string) (string, bool) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			return "", false
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != name {
			continue
		}
		var value string
		if err := decoder.DecodeElement(&value, &start); err != nil {
			return "", false
		}
		if value != "" {
			return value, true
		}
	}
}
