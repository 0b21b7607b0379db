// Package evdev is the concrete hardware input actor: it watches a Linux
// input device via holoplot/go-evdev, debounces button-down events at the
// hardware level, and translates the recognized Back/Menu buttons into
// canonical Back/NavigateTo intents at sender=User. Raw input is also the
// most authoritative signal of user activity, so every accepted press also
// calls Actor.OnInteraction, when set, which can be wired to the
// inactivity timer's Notify.
package evdev
