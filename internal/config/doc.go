// Package config resolves the three settings that drive route generation:
// the route directory, the output directory and the output file name.
//
// Values are layered, later layers winning:
//
//  1. built-in defaults (app/routes, .routegen, route-file.ts)
//  2. the first config file found walking up from the working directory
//  3. ROUTEGEN_* environment variables, with a .env file as fallback
//  4. explicitly supplied command-line flags
//
// # Configuration Files
//
// Searched in this order in each directory:
//
//	.routegenrc          (YAML)
//	.routegenrc.json
//	.routegenrc.yaml
//	.routegenrc.yml
//	package.json         ("rrv7Routegen" object)
//
// Example .routegenrc:
//
//	routeDir: app/routes
//	outDir: .routegen
//	outputFileName: route-file.ts
//
// # Usage
//
//	cfg, err := config.Resolve(".", config.Overrides{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Routes:", cfg.RouteDirPath())
package config
