package ws

import (
	"reflect"
	"strconv"

	"go-splendor/game"

	"github.com/mitchellh/mapstructure"
)

// 自定义 HookFunc，把字符串转换成 int
func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Int {
			return strconv.Atoi(data.(string))
		}
		return data, nil
	}
}

// decodeAction builds an action from a client payload. Unknown fields are rejected.
func decodeAction(actionType game.ActionType, payload map[string]interface{}) (game.Action, error) {
	var action game.Action
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  stringToIntHookFunc(),
		ErrorUnused: true,
		Result:      &action,
	})
	if err != nil {
		return action, err
	}
	if err := decoder.Decode(payload); err != nil {
		return action, err
	}
	action.Type = actionType
	return action, nil
}
