package bma4xx

// Register map from the BMA421/BMA425 datasheet. The BMA400 and BMA456 share
// CHIP_ID at 0x00; their other offsets are not checked against this table.
const (
	RegisterChipID         Register = 0x00
	RegisterErrReg         Register = 0x02
	RegisterStatus         Register = 0x03
	RegisterData0          Register = 0x0A
	RegisterData1          Register = 0x0B
	RegisterData2          Register = 0x0C
	RegisterData3          Register = 0x0D
	RegisterData4          Register = 0x0E
	RegisterData5          Register = 0x0F
	RegisterData6          Register = 0x10
	RegisterData7          Register = 0x11
	RegisterData8          Register = 0x12
	RegisterData9          Register = 0x13
	RegisterData10         Register = 0x14
	RegisterData11         Register = 0x15
	RegisterData12         Register = 0x16
	RegisterData13         Register = 0x17
	RegisterSensorTime0    Register = 0x18
	RegisterSensorTime1    Register = 0x19
	RegisterSensorTime2    Register = 0x1A
	RegisterEvent          Register = 0x1B
	RegisterIntStatus0     Register = 0x1C
	RegisterIntStatus1     Register = 0x1D
	RegisterStepCounter0   Register = 0x1E
	RegisterStepCounter1   Register = 0x1F
	RegisterStepCounter2   Register = 0x20
	RegisterStepCounter3   Register = 0x21
	RegisterTemperature    Register = 0x22
	RegisterFIFOLength0    Register = 0x24
	RegisterFIFOLength1    Register = 0x25
	RegisterFIFOData       Register = 0x26
	RegisterActivityType   Register = 0x27
	RegisterInternalStatus Register = 0x2A
	RegisterAccConf        Register = 0x40
	RegisterAccRange       Register = 0x41
	RegisterAuxConf        Register = 0x44
	RegisterFIFODowns      Register = 0x45
	RegisterFIFOWTM0       Register = 0x46
	RegisterFIFOWTM1       Register = 0x47
	RegisterFIFOConfig0    Register = 0x48
	RegisterFIFOConfig1    Register = 0x49
	RegisterAuxDevID       Register = 0x4B
	RegisterAuxIFConf      Register = 0x4C
	RegisterAuxRdAddr      Register = 0x4D
	RegisterAuxWrAddr      Register = 0x4E
	RegisterAuxWrData      Register = 0x4F
	RegisterInt1IOCtrl     Register = 0x53
	RegisterInt2IOCtrl     Register = 0x54
	RegisterIntLatch       Register = 0x55
	RegisterInt1Map        Register = 0x56
	RegisterInt2Map        Register = 0x57
	RegisterIntMapData     Register = 0x58
	RegisterInitCtrl       Register = 0x59
	RegisterFeaturesIn     Register = 0x5E
	RegisterInternalError  Register = 0x5F
	RegisterNVMConf        Register = 0x6A
	RegisterIFConf         Register = 0x6B
	RegisterAccSelfTest    Register = 0x6D
	RegisterNVConf         Register = 0x70
	RegisterOffset0        Register = 0x71
	RegisterOffset1        Register = 0x72
	RegisterOffset2        Register = 0x73
	RegisterPwrConf        Register = 0x7C
	RegisterPwrCtrl        Register = 0x7D
	RegisterCmd            Register = 0x7E
)

// Datasheet names, used in log output and register dumps.
var registerNames = map[Register]string{
	RegisterChipID:         "CHIP_ID",
	RegisterErrReg:         "ERR_REG",
	RegisterStatus:         "STATUS",
	RegisterData0:          "DATA_0",
	RegisterData1:          "DATA_1",
	RegisterData2:          "DATA_2",
	RegisterData3:          "DATA_3",
	RegisterData4:          "DATA_4",
	RegisterData5:          "DATA_5",
	RegisterData6:          "DATA_6",
	RegisterData7:          "DATA_7",
	RegisterData8:          "DATA_8",
	RegisterData9:          "DATA_9",
	RegisterData10:         "DATA_10",
	RegisterData11:         "DATA_11",
	RegisterData12:         "DATA_12",
	RegisterData13:         "DATA_13",
	RegisterSensorTime0:    "SENSOR_TIME_0",
	RegisterSensorTime1:    "SENSOR_TIME_1",
	RegisterSensorTime2:    "SENSOR_TIME_2",
	RegisterEvent:          "EVENT",
	RegisterIntStatus0:     "INT_STATUS_0",
	RegisterIntStatus1:     "INT_STATUS_1",
	RegisterStepCounter0:   "STEP_COUNTER_0",
	RegisterStepCounter1:   "STEP_COUNTER_1",
	RegisterStepCounter2:   "STEP_COUNTER_2",
	RegisterStepCounter3:   "STEP_COUNTER_3",
	RegisterTemperature:    "TEMPERATURE",
	RegisterFIFOLength0:    "FIFO_LENGTH_0",
	RegisterFIFOLength1:    "FIFO_LENGTH_1",
	RegisterFIFOData:       "FIFO_DATA",
	RegisterActivityType:   "ACTIVITY_TYPE",
	RegisterInternalStatus: "INTERNAL_STATUS",
	RegisterAccConf:        "ACC_CONF",
	RegisterAccRange:       "ACC_RANGE",
	RegisterAuxConf:        "AUX_CONF",
	RegisterFIFODowns:      "FIFO_DOWNS",
	RegisterFIFOWTM0:       "FIFO_WTM_0",
	RegisterFIFOWTM1:       "FIFO_WTM_1",
	RegisterFIFOConfig0:    "FIFO_CONFIG_0",
	RegisterFIFOConfig1:    "FIFO_CONFIG_1",
	RegisterAuxDevID:       "AUX_DEV_ID",
	RegisterAuxIFConf:      "AUX_IF_CONF",
	RegisterAuxRdAddr:      "AUX_RD_ADDR",
	RegisterAuxWrAddr:      "AUX_WR_ADDR",
	RegisterAuxWrData:      "AUX_WR_DATA",
	RegisterInt1IOCtrl:     "INT1_IO_CTRL",
	RegisterInt2IOCtrl:     "INT2_IO_CTRL",
	RegisterIntLatch:       "INT_LATCH",
	RegisterInt1Map:        "INT1_MAP",
	RegisterInt2Map:        "INT2_MAP",
	RegisterIntMapData:     "INT_MAP_DATA",
	RegisterInitCtrl:       "INIT_CTRL",
	RegisterFeaturesIn:     "FEATURES_IN",
	RegisterInternalError:  "INTERNAL_ERROR",
	RegisterNVMConf:        "NVM_CONF",
	RegisterIFConf:         "IF_CONF",
	RegisterAccSelfTest:    "ACC_SELF_TEST",
	RegisterNVConf:         "NV_CONF",
	RegisterOffset0:        "OFFSET_0",
	RegisterOffset1:        "OFFSET_1",
	RegisterOffset2:        "OFFSET_2",
	RegisterPwrConf:        "PWR_CONF",
	RegisterPwrCtrl:        "PWR_CTRL",
	RegisterCmd:            "CMD",
}
