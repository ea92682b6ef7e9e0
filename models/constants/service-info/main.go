package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Missense Colouring Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the missense colouring API!"
	SERVICE_DESCRIPTION ServiceInfo = "Generates ChimeraX scripts colouring structures by AlphaMissense pathogenicity."

	SERVICE_ARTIFACT    ServiceInfo = "missensecolor"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("structure:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
