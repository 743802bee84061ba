// Package commands wires the sss operator CLI: hook initialization, fee
// configuration, list management, pause control, and preset inspection.
package commands
