package database

// sampleScriptCode is the script published under the bootstrap admin on first
// startup so a fresh install has something to browse.
const sampleScriptCode = `-- Auto Game Bot by Faze
local RunService = game:GetService("RunService")
local Players = game:GetService("Players")
local Player = Players.LocalPlayer

local Bot = {}
Bot.Running = false

function Bot:Start()
    self.Running = true

    -- Connection that will run every frame
    self.Connection = RunService.RenderStepped:Connect(function(deltaTime)
        if not self.Running then return end

        -- Bot logic here
        self:CollectResources()
        self:AttackEnemies()
    end)

    print("Bot started successfully!")
end

function Bot:Stop()
    self.Running = false
    if self.Connection then
        self.Connection:Disconnect()
        self.Connection = nil
    end
    print("Bot stopped")
end

function Bot:CollectResources()
    -- Add your resource collection logic here
    local resources = workspace:FindFirstChild("Resources")
    if resources then
        -- Collect nearby resources
    end
end

function Bot:AttackEnemies()
    -- Add your combat logic here
    local enemies = workspace:FindFirstChild("Enemies")
    if enemies then
        -- Attack nearby enemies
    end
end

return Bot`
