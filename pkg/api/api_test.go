package api

import (
	"math"
	"strings"
	"testing"
)

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"Init without payload", `{"action":"INIT"}`, false},
		{"Start level", `{"action":"START_LEVEL","payload":{"levelId":2}}`, false},
		{"Collect", `{"token":"abc","action":"COLLECT_ITEM","payload":{"itemId":"1-1"}}`, false},
		{"Key down", `{"action":"KEY_DOWN","payload":{"code":"KeyW"}}`, false},
		{"Look", `{"action":"LOOK","payload":{"x":0,"y":0,"z":-1}}`, false},
		{"Null payload", `{"action":"RESTART","payload":null}`, false},

		{"Not json", `{action`, true},
		{"Unknown action", `{"action":"FLY"}`, true},
		{"Missing action", `{"payload":{}}`, true},
		{"Extra field", `{"action":"INIT","cheat":true}`, true},
		{"Start level without payload", `{"action":"START_LEVEL"}`, true},
		{"Start level with string id", `{"action":"START_LEVEL","payload":{"levelId":"2"}}`, true},
		{"Key without code", `{"action":"KEY_UP","payload":{}}`, true},
		{"Look missing axis", `{"action":"LOOK","payload":{"x":1,"y":0}}`, true},
		{"Damage fractional", `{"action":"DAMAGE","payload":{"amount":1.5}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := DecodeCommand([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeCommand(%s) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err == nil && cmd.Action == "" {
				t.Error("Action not decoded")
			}
		})
	}
}

func TestDecodeCommand_KeepsPayload(t *testing.T) {
	cmd, err := DecodeCommand([]byte(`{"action":"COLLECT_ITEM","payload":{"itemId":"2-3"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cmd.Payload), `"2-3"`) {
		t.Errorf("Payload = %s", cmd.Payload)
	}
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		wantErr bool
	}{
		{"Level ok", LevelPayload{LevelID: 1}, false},
		{"Level zero", LevelPayload{}, true},
		{"Item ok", ItemPayload{ItemID: "1-1"}, false},
		{"Item empty", ItemPayload{}, true},
		{"Damage zero", DamagePayload{Amount: 0}, false},
		{"Damage negative", DamagePayload{Amount: -5}, true},
		{"Key ok", KeyPayload{Code: "KeyW"}, false},
		{"Key empty", KeyPayload{}, true},
		{"Look ok", LookPayload{Z: -1}, false},
		{"Look zero", LookPayload{}, true},
		{"Look NaN", LookPayload{X: math.NaN(), Z: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.v.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
